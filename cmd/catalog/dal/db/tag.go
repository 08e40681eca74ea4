package db

import (
	"context"

	"WeTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// FindTagByName returns nil without error when no tag carries the name.
func FindTagByName(ctx context.Context, name string) (*model.Tag, error) {
	tag := new(model.Tag)
	err := DB.WithContext(ctx).Model(&model.Tag{}).Where("name = ?", name).First(tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.WithMessage(err, "Failed to find Tag")
	}
	return tag, nil
}

// FindOrCreateTag reuses an existing tag row or persists a new one right away,
// so a concurrent caller can pick it up before the surrounding work commits.
func FindOrCreateTag(ctx context.Context, tx *gorm.DB, name string) (*model.Tag, error) {
	tag := new(model.Tag)
	err := tx.WithContext(ctx).Where(model.Tag{Name: name}).FirstOrCreate(tag).Error
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to find or create Tag")
	}
	return tag, nil
}

// ReplaceVideoTags overwrites the video's tag links with exactly the given
// names. It runs on the caller's handle so it can take part in a larger
// transaction; pass DB for a standalone call.
func ReplaceVideoTags(ctx context.Context, tx *gorm.DB, videoId int64, names []string) error {
	if err := tx.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.VideoTag{}).Error; err != nil {
		return errors.WithMessage(err, "Failed to clear VideoTags")
	}
	for _, name := range names {
		tag, err := FindOrCreateTag(ctx, tx, name)
		if err != nil {
			return err
		}
		link := &model.VideoTag{VideoId: videoId, TagId: tag.TagId}
		if err := tx.WithContext(ctx).Create(link).Error; err != nil {
			return errors.WithMessage(err, "Failed to link VideoTag")
		}
	}
	return nil
}

func GetTagsForVideo(ctx context.Context, videoId int64) ([]model.Tag, error) {
	tags := make([]model.Tag, 0)
	err := DB.WithContext(ctx).Model(&model.Tag{}).
		Joins("JOIN video_tags ON video_tags.tag_id = tags.tag_id").
		Where("video_tags.video_id = ?", videoId).
		Order("video_tags.created_at ASC, tags.tag_id ASC").
		Find(&tags).Error
	if err != nil {
		return nil, errors.Wrapf(err, "GetTagsForVideo failed")
	}
	return tags, nil
}

// GetTagsForVideos batches the tag lookup for a listing page.
func GetTagsForVideos(ctx context.Context, videoIds []int64) (map[int64][]model.Tag, error) {
	result := make(map[int64][]model.Tag, len(videoIds))
	if len(videoIds) == 0 {
		return result, nil
	}
	var rows []struct {
		model.Tag
		VideoId int64
	}
	err := DB.WithContext(ctx).Model(&model.Tag{}).
		Select("tags.*, video_tags.video_id AS video_id").
		Joins("JOIN video_tags ON video_tags.tag_id = tags.tag_id").
		Where("video_tags.video_id IN (?)", videoIds).
		Order("video_tags.created_at ASC, tags.tag_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrapf(err, "GetTagsForVideos failed")
	}
	for _, row := range rows {
		result[row.VideoId] = append(result[row.VideoId], row.Tag)
	}
	return result, nil
}

// GetPopularTags ranks tags by how many videos carry them.
func GetPopularTags(ctx context.Context, limit int64) ([]model.Tag, error) {
	tags := make([]model.Tag, 0)
	err := DB.WithContext(ctx).Model(&model.Tag{}).
		Select("tags.*").
		Joins("JOIN video_tags ON video_tags.tag_id = tags.tag_id").
		Group("tags.tag_id").
		Order("COUNT(video_tags.video_id) DESC").
		Limit(int(limit)).
		Find(&tags).Error
	if err != nil {
		return nil, errors.Wrapf(err, "GetPopularTags failed")
	}
	return tags, nil
}
