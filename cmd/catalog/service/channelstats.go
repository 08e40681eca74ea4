package service

import (
	"context"

	"WeTube.com/cmd/catalog/dal/db"
	"WeTube.com/cmd/model"
)

// A channel is just a user seen as a content owner.
type ChannelStatsService struct {
	ctx context.Context
}

func NewChannelStatsService(ctx context.Context) *ChannelStatsService {
	return &ChannelStatsService{ctx: ctx}
}

func (service *ChannelStatsService) UserByUsername(username string) (*model.User, error) {
	return db.GetUserByUsername(service.ctx, username)
}

// Stats aggregates total views/likes, video count and subscriber count.
func (service *ChannelStatsService) Stats(userId int64) (*db.ChannelStats, error) {
	return db.GetChannelStats(service.ctx, userId)
}
