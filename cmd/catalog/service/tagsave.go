package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"WeTube.com/cmd/catalog/dal/db"
	"WeTube.com/cmd/model"
	"WeTube.com/pkg/constants"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type TagSaveService struct {
	ctx context.Context
}

func NewTagSaveService(ctx context.Context) *TagSaveService {
	return &TagSaveService{ctx: ctx}
}

// NormalizeTagNames splits comma-separated input into the canonical name list:
// trimmed, empties dropped, over-length names dropped silently, duplicates
// collapsed keeping first-seen order.
func NormalizeTagNames(raw string) []string {
	names := make([]string, 0)
	seen := make(map[string]struct{})
	for _, fragment := range strings.Split(raw, ",") {
		name := strings.TrimSpace(fragment)
		if name == "" {
			continue
		}
		if utf8.RuneCountInString(name) > constants.MaxTagNameLength {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// SaveVideoTags replaces the video's tag set with the parsed input. An empty
// or blank input clears every tag link.
func (service *TagSaveService) SaveVideoTags(videoId int64, raw string) error {
	if _, err := db.GetVideoInfo(service.ctx, videoId); err != nil {
		return err
	}
	names := NormalizeTagNames(raw)
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		return db.ReplaceVideoTags(service.ctx, tx, videoId, names)
	})
	if err != nil {
		return errors.WithMessage(err, "dao.ReplaceVideoTags failed")
	}
	return nil
}

// SaveVideoTagsTx is the composable variant: the caller owns the transaction
// and decides when the change becomes durable.
func (service *TagSaveService) SaveVideoTagsTx(tx *gorm.DB, videoId int64, raw string) error {
	return db.ReplaceVideoTags(service.ctx, tx, videoId, NormalizeTagNames(raw))
}

func (service *TagSaveService) VideoTags(videoId int64) ([]model.Tag, error) {
	return db.GetTagsForVideo(service.ctx, videoId)
}

// AttachTags fills the transient Tags field of each video in one batch query.
func (service *TagSaveService) AttachTags(videos []*model.Video) error {
	if len(videos) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(videos))
	for _, video := range videos {
		ids = append(ids, video.VideoId)
	}
	tagsById, err := db.GetTagsForVideos(service.ctx, ids)
	if err != nil {
		return errors.WithMessage(err, "dao.GetTagsForVideos failed")
	}
	for _, video := range videos {
		video.Tags = tagsById[video.VideoId]
	}
	return nil
}

// PopularTags clamps limit into [1, MaxPopularTags], defaulting to 10.
func (service *TagSaveService) PopularTags(limit int64) ([]model.Tag, error) {
	if limit < 1 || limit > constants.MaxPopularTags {
		limit = constants.DefaultPopularTags
	}
	return db.GetPopularTags(service.ctx, limit)
}
