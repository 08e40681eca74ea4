package db

import (
	"context"
	"strings"

	"WeTube.com/cmd/model"
	"WeTube.com/pkg/constants"
	"WeTube.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Sort modes accepted by the catalog listing.
const (
	SortLatest  = "latest"
	SortPopular = "popular"
	SortViews   = "views"
)

type VideoListParams struct {
	Page     int64
	PageSize int64
	Sort     string
	Category string
	Keyword  string
	TagName  string
	UserId   int64
	UserIds  []int64
}

// Normalize clamps page/page-size and defaults the sort mode.
func (p *VideoListParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 || p.PageSize > constants.MaxPageSize {
		p.PageSize = constants.DefaultPageSize
	}
	p.Sort = strings.TrimSpace(p.Sort)
	if p.Sort == "" {
		p.Sort = SortLatest
	}
}

func applySort(query *gorm.DB, sort string) *gorm.DB {
	switch sort {
	case SortPopular:
		return query.Order("likes DESC, views DESC")
	case SortViews:
		return query.Order("views DESC, video_id DESC")
	default:
		return query.Order("created_at DESC, video_id DESC")
	}
}

// QueryVideos runs the catalog listing: tag/keyword/category/owner filters
// AND-compose, then sort and paginate. An unknown tag name yields an empty
// result set, not an error.
func QueryVideos(ctx context.Context, params *VideoListParams) ([]*model.Video, int64, error) {
	params.Normalize()

	query := DB.WithContext(ctx).Model(&model.Video{})

	if name := strings.TrimSpace(params.TagName); name != "" {
		tag, err := FindTagByName(ctx, name)
		if err != nil {
			return nil, 0, err
		}
		if tag == nil {
			return []*model.Video{}, 0, nil
		}
		sub := DB.Model(&model.VideoTag{}).Select("video_id").Where("tag_id = ?", tag.TagId)
		query = query.Where("video_id IN (?)", sub)
	}
	if kw := strings.TrimSpace(params.Keyword); kw != "" {
		pattern := "%" + strings.ToLower(kw) + "%"
		query = query.Where("LOWER(title) LIKE ? OR (description IS NOT NULL AND LOWER(description) LIKE ?)",
			pattern, pattern)
	}
	if cat := strings.TrimSpace(params.Category); cat != "" && cat != "all" {
		query = query.Where("category = ?", cat)
	}
	if params.UserId != 0 {
		query = query.Where("user_id = ?", params.UserId)
	}
	if params.UserIds != nil {
		if len(params.UserIds) == 0 {
			return []*model.Video{}, 0, nil
		}
		query = query.Where("user_id IN (?)", params.UserIds)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "QueryVideos count failed")
	}

	var videos []*model.Video
	if err := applySort(query, params.Sort).
		Offset(int((params.Page - 1) * params.PageSize)).
		Limit(int(params.PageSize)).
		Find(&videos).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "QueryVideos find failed")
	}
	return videos, count, nil
}

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

// GetVideoDetail loads the video with its owner and tags.
func GetVideoDetail(ctx context.Context, videoId int64) (*model.Video, error) {
	video := new(model.Video)
	err := DB.WithContext(ctx).Preload("User").Where("video_id = ?", videoId).First(video).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("video not found")
		}
		return nil, errors.WithMessage(err, "Failed to get VideoDetail")
	}
	tags, err := GetTagsForVideo(ctx, videoId)
	if err != nil {
		return nil, err
	}
	video.Tags = tags
	return video, nil
}

func InsertVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return errors.WithMessage(err, "Failed to insert Video")
	}
	return nil
}

func UpdateVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", video.VideoId).
		Updates(map[string]interface{}{
			"title":       video.Title,
			"description": video.Description,
			"category":    video.Category,
		}).Error; err != nil {
		return errors.WithMessage(err, "Failed to update Video")
	}
	return nil
}

// DeleteVideo removes the video row and everything hanging off it (comments,
// tag links, like rows) in one transaction, mirroring the store-level cascade.
func DeleteVideo(ctx context.Context, videoId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("video_id = ?", videoId).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", videoId).Delete(&model.VideoTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", videoId).Delete(&model.VideoLike{}).Error; err != nil {
			return err
		}
		result := tx.Where("video_id = ?", videoId).Delete(&model.Video{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errno.NotFoundErr.WithMessage("video not found")
		}
		return nil
	})
}

// --- related-video tier queries ---

// GetVideosBySharedTags returns videos sharing at least one tag with the
// source video, newest first.
func GetVideosBySharedTags(ctx context.Context, videoId int64, excludeIds []int64, limit int64) ([]*model.Video, error) {
	tagSub := DB.Model(&model.VideoTag{}).Select("tag_id").Where("video_id = ?", videoId)
	videoSub := DB.Model(&model.VideoTag{}).Select("video_id").Where("tag_id IN (?)", tagSub)

	var videos []*model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id IN (?)", videoSub).
		Where("video_id NOT IN (?)", excludeIds).
		Order("created_at DESC, video_id DESC").
		Limit(int(limit)).
		Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "GetVideosBySharedTags failed")
	}
	return videos, nil
}

func GetVideosByCategory(ctx context.Context, category string, excludeIds []int64, limit int64) ([]*model.Video, error) {
	var videos []*model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("category = ?", category).
		Where("video_id NOT IN (?)", excludeIds).
		Order("created_at DESC, video_id DESC").
		Limit(int(limit)).
		Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "GetVideosByCategory failed")
	}
	return videos, nil
}

func GetVideosByAuthor(ctx context.Context, userId int64, excludeIds []int64, limit int64) ([]*model.Video, error) {
	var videos []*model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ?", userId).
		Where("video_id NOT IN (?)", excludeIds).
		Order("created_at DESC, video_id DESC").
		Limit(int(limit)).
		Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "GetVideosByAuthor failed")
	}
	return videos, nil
}

func GetVideosByPopularity(ctx context.Context, excludeIds []int64, limit int64) ([]*model.Video, error) {
	var videos []*model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id NOT IN (?)", excludeIds).
		Order("views DESC, likes DESC").
		Limit(int(limit)).
		Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "GetVideosByPopularity failed")
	}
	return videos, nil
}

// --- channel stats ---

type ChannelStats struct {
	TotalViews      int64 `json:"total_views"`
	TotalLikes      int64 `json:"total_likes"`
	VideoCount      int64 `json:"video_count"`
	SubscriberCount int64 `json:"subscriber_count"`
}

func GetChannelStats(ctx context.Context, userId int64) (*ChannelStats, error) {
	stats := new(ChannelStats)
	err := DB.WithContext(ctx).Model(&model.Video{}).
		Select("COALESCE(SUM(views), 0) AS total_views, COALESCE(SUM(likes), 0) AS total_likes, COUNT(video_id) AS video_count").
		Where("user_id = ?", userId).
		Scan(stats).Error
	if err != nil {
		return nil, errors.Wrapf(err, "GetChannelStats failed")
	}
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscribed_to_id = ?", userId).
		Count(&stats.SubscriberCount).Error; err != nil {
		return nil, errors.Wrapf(err, "GetChannelStats subscriber count failed")
	}
	return stats, nil
}

func GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user := new(model.User)
	err := DB.WithContext(ctx).Model(&model.User{}).Where("username = ?", username).First(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("user not found")
		}
		return nil, errors.WithMessage(err, "Failed to get User")
	}
	return user, nil
}
