package db

import (
	"context"

	"WeTube.com/cmd/model"
	"WeTube.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := DB.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.WithMessage(err, "Failed to create Comment")
	}
	return nil
}

func GetCommentInfo(ctx context.Context, commentId int64) (*model.Comment, error) {
	comment := new(model.Comment)
	err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).First(comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("comment not found")
		}
		return nil, errors.WithMessage(err, "Failed to get CommentInfo")
	}
	return comment, nil
}

func UpdateCommentContent(ctx context.Context, commentId int64, content string) error {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ?", commentId).
		UpdateColumn("content", content).Error; err != nil {
		return errors.WithMessage(err, "Failed to update Comment")
	}
	return nil
}

// DeleteCommentTree removes the comment and every comment below it in the
// parent chain, all in one transaction. The walk is level by level, so any
// reply depth the storage model permits is covered.
func DeleteCommentTree(ctx context.Context, commentId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := []int64{commentId}
		frontier := []int64{commentId}
		for len(frontier) > 0 {
			var next []int64
			if err := tx.Model(&model.Comment{}).
				Where("parent_id IN (?)", frontier).
				Pluck("comment_id", &next).Error; err != nil {
				return err
			}
			all = append(all, next...)
			frontier = next
		}
		return tx.Where("comment_id IN (?)", all).Delete(&model.Comment{}).Error
	})
}

// GetCommentsByVideo returns the flat comment arena for a video, oldest
// first, with authors loaded for rendering.
func GetCommentsByVideo(ctx context.Context, videoId int64) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0)
	if err := DB.WithContext(ctx).Model(&model.Comment{}).
		Preload("User").
		Where("video_id = ?", videoId).
		Order("created_at ASC, comment_id ASC").
		Find(&comments).Error; err != nil {
		return nil, errors.Wrapf(err, "GetCommentsByVideo failed")
	}
	return comments, nil
}

func GetVideoCommentCount(ctx context.Context, videoId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("video_id = ?", videoId).
		Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "GetVideoCommentCount failed")
	}
	return count, nil
}
