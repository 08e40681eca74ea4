package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"WeTube.com/cmd/catalog/dal/db"
	"WeTube.com/cmd/model"
	"WeTube.com/pkg/constants"
	"WeTube.com/pkg/errno"
	"github.com/pkg/errors"
)

// PageMeta describes one page of a paginated listing.
type PageMeta struct {
	TotalItems int64 `json:"total_items"`
	TotalPages int64 `json:"total_pages"`
	Page       int64 `json:"current_page"`
	PageSize   int64 `json:"per_page"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

func BuildPageMeta(total, page, pageSize int64) *PageMeta {
	totalPages := (total + pageSize - 1) / pageSize
	return &PageMeta{
		TotalItems: total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

type VideoListService struct {
	ctx context.Context
}

func NewVideoListService(ctx context.Context) *VideoListService {
	return &VideoListService{ctx: ctx}
}

// VideoList is the catalog query engine entry point. Pages past the end come
// back as an empty item list with consistent meta, not an error.
func (v *VideoListService) VideoList(params *db.VideoListParams) ([]*model.Video, *PageMeta, error) {
	videos, count, err := db.QueryVideos(v.ctx, params)
	if err != nil {
		return nil, nil, errors.WithMessage(err, "dao.QueryVideos failed")
	}
	return videos, BuildPageMeta(count, params.Page, params.PageSize), nil
}

func (v *VideoListService) VideoInfo(videoId int64) (*model.Video, error) {
	return db.GetVideoInfo(v.ctx, videoId)
}

func (v *VideoListService) VideoDetail(videoId int64) (*model.Video, error) {
	return db.GetVideoDetail(v.ctx, videoId)
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errno.ParamErr.WithMessage("Title is required")
	}
	if utf8.RuneCountInString(title) > constants.MaxTitleLength {
		return errno.ParamErr.WithMessage("Title too long, maximum 200 characters allowed")
	}
	return nil
}

// CreateVideo persists a new video row. The blob keys must already have been
// produced by the storage collaborator.
func (v *VideoListService) CreateVideo(video *model.Video) error {
	if err := validateTitle(video.Title); err != nil {
		return err
	}
	if strings.TrimSpace(video.VideoPath) == "" {
		return errno.ParamErr.WithMessage("Video path is required")
	}
	if err := db.InsertVideo(v.ctx, video); err != nil {
		return errors.WithMessage(err, "dao.InsertVideo failed")
	}
	return nil
}

// UpdateVideo changes title/description/category. Only the owner may update.
func (v *VideoListService) UpdateVideo(videoId, userId int64, title, description, category string) error {
	video, err := db.GetVideoInfo(v.ctx, videoId)
	if err != nil {
		return err
	}
	if video.UserId != userId {
		return errno.AuthorizationErr.WithMessage("Only the owner can edit this video")
	}
	if err := validateTitle(title); err != nil {
		return err
	}
	video.Title = title
	video.Description = description
	video.Category = category
	return db.UpdateVideo(v.ctx, video)
}

// DeleteVideo removes an owned video and its dependents.
func (v *VideoListService) DeleteVideo(videoId, userId int64) error {
	video, err := db.GetVideoInfo(v.ctx, videoId)
	if err != nil {
		return err
	}
	if video.UserId != userId {
		return errno.AuthorizationErr.WithMessage("Only the owner can delete this video")
	}
	return db.DeleteVideo(v.ctx, videoId)
}

// AdminDeleteVideo is the privileged moderation path, no ownership check.
func (v *VideoListService) AdminDeleteVideo(videoId int64) error {
	return db.DeleteVideo(v.ctx, videoId)
}
