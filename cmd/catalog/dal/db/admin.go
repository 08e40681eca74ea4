package db

import (
	"context"
	"strings"

	"WeTube.com/cmd/model"
	"WeTube.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Moderation listings: newest first, optional keyword search, paginated.

func SearchUsers(ctx context.Context, keyword string, page, pageSize int64) ([]*model.User, int64, error) {
	query := DB.WithContext(ctx).Model(&model.User{})
	if kw := strings.TrimSpace(keyword); kw != "" {
		pattern := "%" + strings.ToLower(kw) + "%"
		query = query.Where("LOWER(username) LIKE ? OR LOWER(email) LIKE ? OR LOWER(nickname) LIKE ?",
			pattern, pattern, pattern)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "SearchUsers count failed")
	}
	var users []*model.User
	if err := query.Order("created_at DESC, user_id DESC").
		Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).
		Find(&users).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "SearchUsers find failed")
	}
	return users, count, nil
}

func SearchVideos(ctx context.Context, keyword string, page, pageSize int64) ([]*model.Video, int64, error) {
	query := DB.WithContext(ctx).Model(&model.Video{})
	if kw := strings.TrimSpace(keyword); kw != "" {
		pattern := "%" + strings.ToLower(kw) + "%"
		query = query.Joins("JOIN users ON users.user_id = videos.user_id").
			Where("LOWER(videos.title) LIKE ? OR LOWER(users.username) LIKE ?", pattern, pattern)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "SearchVideos count failed")
	}
	var videos []*model.Video
	if err := query.Preload("User").
		Order("videos.created_at DESC, videos.video_id DESC").
		Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).
		Find(&videos).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "SearchVideos find failed")
	}
	return videos, count, nil
}

func SearchComments(ctx context.Context, keyword string, page, pageSize int64) ([]*model.Comment, int64, error) {
	query := DB.WithContext(ctx).Model(&model.Comment{})
	if kw := strings.TrimSpace(keyword); kw != "" {
		pattern := "%" + strings.ToLower(kw) + "%"
		query = query.Where("LOWER(content) LIKE ?", pattern)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "SearchComments count failed")
	}
	var comments []*model.Comment
	if err := query.Preload("User").
		Order("created_at DESC, comment_id DESC").
		Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).
		Find(&comments).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "SearchComments find failed")
	}
	return comments, count, nil
}

// DeleteUser removes the account and everything it owns in one transaction:
// the user's videos with their comments/tag links/like rows, the user's own
// comments and likes elsewhere, and subscriptions on either side.
func DeleteUser(ctx context.Context, userId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var videoIds []int64
		if err := tx.Model(&model.Video{}).Where("user_id = ?", userId).
			Pluck("video_id", &videoIds).Error; err != nil {
			return err
		}
		if len(videoIds) > 0 {
			if err := tx.Where("video_id IN (?)", videoIds).Delete(&model.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("video_id IN (?)", videoIds).Delete(&model.VideoTag{}).Error; err != nil {
				return err
			}
			if err := tx.Where("video_id IN (?)", videoIds).Delete(&model.VideoLike{}).Error; err != nil {
				return err
			}
			if err := tx.Where("video_id IN (?)", videoIds).Delete(&model.Video{}).Error; err != nil {
				return err
			}
		}
		// The user's comments on other videos take their reply chains with
		// them, same as the parent-link cascade would.
		var commentIds []int64
		if err := tx.Model(&model.Comment{}).Where("user_id = ?", userId).
			Pluck("comment_id", &commentIds).Error; err != nil {
			return err
		}
		frontier := commentIds
		for len(frontier) > 0 {
			var next []int64
			if err := tx.Model(&model.Comment{}).Where("parent_id IN (?)", frontier).
				Pluck("comment_id", &next).Error; err != nil {
				return err
			}
			commentIds = append(commentIds, next...)
			frontier = next
		}
		if len(commentIds) > 0 {
			if err := tx.Where("comment_id IN (?)", commentIds).Delete(&model.Comment{}).Error; err != nil {
				return err
			}
		}
		// Dropping the user's like rows must re-sync the denormalized
		// counters on the affected videos.
		var likedVideoIds []int64
		if err := tx.Model(&model.VideoLike{}).Where("user_id = ?", userId).
			Pluck("video_id", &likedVideoIds).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userId).Delete(&model.VideoLike{}).Error; err != nil {
			return err
		}
		for _, vid := range likedVideoIds {
			var likes int64
			if err := tx.Model(&model.VideoLike{}).Where("video_id = ?", vid).
				Count(&likes).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.Video{}).Where("video_id = ?", vid).
				UpdateColumn("likes", likes).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("subscriber_id = ? OR subscribed_to_id = ?", userId, userId).
			Delete(&model.Subscription{}).Error; err != nil {
			return err
		}
		result := tx.Where("user_id = ?", userId).Delete(&model.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errno.NotFoundErr.WithMessage("user not found")
		}
		return nil
	})
}
