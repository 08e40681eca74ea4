package service

import (
	"context"

	"WeTube.com/cmd/relation/dal/db"
	"WeTube.com/pkg/errno"
)

type RelationService struct {
	ctx context.Context
}

func NewRelationService(ctx context.Context) *RelationService {
	return &RelationService{ctx: ctx}
}

// ToggleSubscription follows or unfollows the channel. Subscribing to
// yourself is rejected here, not by the schema.
func (service *RelationService) ToggleSubscription(subscriberId, channelId int64) (isSubscribed bool, count int64, err error) {
	if subscriberId == channelId {
		return false, 0, errno.ParamErr.WithMessage("Cannot subscribe to yourself")
	}
	if _, err = db.GetUserInfo(service.ctx, channelId); err != nil {
		return false, 0, err
	}
	return db.ToggleSubscription(service.ctx, subscriberId, channelId)
}

// IsSubscribed is false for the anonymous user and for self lookups.
func (service *RelationService) IsSubscribed(subscriberId, channelId int64) (bool, error) {
	if subscriberId == 0 || subscriberId == channelId {
		return false, nil
	}
	return db.IsSubscribed(service.ctx, subscriberId, channelId)
}

func (service *RelationService) SubscriberCount(channelId int64) (int64, error) {
	return db.GetSubscriberCount(service.ctx, channelId)
}

// SubscribedChannelIds feeds the catalog's subscription feed scoping.
func (service *RelationService) SubscribedChannelIds(subscriberId int64) ([]int64, error) {
	return db.GetSubscribedChannelIds(service.ctx, subscriberId)
}
