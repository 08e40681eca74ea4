package db

import (
	"context"

	"WeTube.com/cmd/model"
	"WeTube.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func GetUserInfo(ctx context.Context, userId int64) (*model.User, error) {
	user := new(model.User)
	err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).First(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("user not found")
		}
		return nil, errors.WithMessage(err, "Failed to get UserInfo")
	}
	return user, nil
}

func IsSubscribed(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? AND subscribed_to_id = ?", subscriberId, channelId).
		Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "IsSubscribed failed")
	}
	return count != 0, nil
}

// ToggleSubscription flips the subscription row inside one transaction and
// returns the new state with the channel's refreshed subscriber count.
func ToggleSubscription(ctx context.Context, subscriberId, channelId int64) (isSubscribed bool, count int64, err error) {
	err = DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&model.Subscription{}).
			Where("subscriber_id = ? AND subscribed_to_id = ?", subscriberId, channelId).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			if err := tx.Where("subscriber_id = ? AND subscribed_to_id = ?", subscriberId, channelId).
				Delete(&model.Subscription{}).Error; err != nil {
				return err
			}
			isSubscribed = false
		} else {
			if err := tx.Create(&model.Subscription{
				SubscriberId:   subscriberId,
				SubscribedToId: channelId,
			}).Error; err != nil {
				return err
			}
			isSubscribed = true
		}
		return tx.Model(&model.Subscription{}).
			Where("subscribed_to_id = ?", channelId).
			Count(&count).Error
	})
	if err != nil {
		return false, 0, err
	}
	return isSubscribed, count, nil
}

func GetSubscriberCount(ctx context.Context, channelId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscribed_to_id = ?", channelId).
		Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "GetSubscriberCount failed")
	}
	return count, nil
}

// GetSubscribedChannelIds lists the channels the user follows, for the
// subscription feed.
func GetSubscribedChannelIds(ctx context.Context, subscriberId int64) ([]int64, error) {
	ids := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ?", subscriberId).
		Pluck("subscribed_to_id", &ids).Error; err != nil {
		return nil, errors.Wrapf(err, "GetSubscribedChannelIds failed")
	}
	return ids, nil
}
