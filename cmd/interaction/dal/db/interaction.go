package db

import (
	"context"

	"WeTube.com/cmd/model"
	"WeTube.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func GetVideoInfo(ctx context.Context, videoId int64) (*model.Video, error) {
	video := new(model.Video)
	err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).First(video).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("video not found")
		}
		return nil, errors.WithMessage(err, "Failed to get VideoInfo")
	}
	return video, nil
}

func IsVideoLikedByUser(ctx context.Context, videoId, userId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.VideoLike{}).
		Where("video_id = ? AND user_id = ?", videoId, userId).
		Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "IsVideoLikedByUser failed")
	}
	return count != 0, nil
}

func GetVideoLikeCount(ctx context.Context, videoId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.VideoLike{}).
		Where("video_id = ?", videoId).
		Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "GetVideoLikeCount failed")
	}
	return count, nil
}

// ToggleVideoLike flips the (video, user) like row and refreshes the video's
// denormalized counter inside one transaction. The counter is always a full
// recount of the join table, so interleaved toggles cannot leave it drifted.
func ToggleVideoLike(ctx context.Context, videoId, userId int64) (isLiked bool, count int64, err error) {
	err = DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var video model.Video
		if err := tx.Model(&model.Video{}).Where("video_id = ?", videoId).First(&video).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errno.NotFoundErr.WithMessage("video not found")
			}
			return err
		}

		var existing int64
		if err := tx.Model(&model.VideoLike{}).
			Where("video_id = ? AND user_id = ?", videoId, userId).
			Count(&existing).Error; err != nil {
			return err
		}

		if existing > 0 {
			if err := tx.Where("video_id = ? AND user_id = ?", videoId, userId).
				Delete(&model.VideoLike{}).Error; err != nil {
				return err
			}
			isLiked = false
		} else {
			if err := tx.Create(&model.VideoLike{VideoId: videoId, UserId: userId}).Error; err != nil {
				return err
			}
			isLiked = true
		}

		if err := tx.Model(&model.VideoLike{}).
			Where("video_id = ?", videoId).
			Count(&count).Error; err != nil {
			return err
		}
		return tx.Model(&model.Video{}).Where("video_id = ?", videoId).
			UpdateColumn("likes", count).Error
	})
	if err != nil {
		return false, 0, err
	}
	return isLiked, count, nil
}

// IncrementVideoViews bumps the view counter by one in a single statement so
// concurrent requests cannot lose updates.
func IncrementVideoViews(ctx context.Context, videoId int64) error {
	result := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		return errors.Wrapf(result.Error, "IncrementVideoViews failed")
	}
	if result.RowsAffected == 0 {
		return errno.NotFoundErr.WithMessage("video not found")
	}
	return nil
}
