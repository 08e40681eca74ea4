package service

import (
	"context"

	"WeTube.com/cmd/catalog/dal/db"
	"WeTube.com/cmd/model"
	"WeTube.com/pkg/constants"
	"WeTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type RecommendVideoService struct {
	ctx context.Context
}

func NewRecommendVideoService(ctx context.Context) *RecommendVideoService {
	return &RecommendVideoService{ctx: ctx}
}

// Recommend picks up to limit related videos for the watch page. Tiers run in
// strict priority order and each only draws what the previous ones left open:
// shared tag, same category, same author, then global popularity. The source
// video never appears and no candidate appears twice. A missing source video
// yields an empty list, never an error.
func (service *RecommendVideoService) Recommend(videoId, limit int64) ([]*model.Video, error) {
	if limit <= 0 {
		limit = constants.DefaultRecommendLimit
	}

	current, err := db.GetVideoInfo(service.ctx, videoId)
	if err != nil {
		if errno.Is(err, errno.NotFoundErr) {
			return []*model.Video{}, nil
		}
		return nil, err
	}

	result := make([]*model.Video, 0, limit)
	exclude := []int64{videoId}

	collect := func(videos []*model.Video) {
		for _, v := range videos {
			if int64(len(result)) >= limit {
				return
			}
			result = append(result, v)
			exclude = append(exclude, v.VideoId)
		}
	}

	videos, err := db.GetVideosBySharedTags(service.ctx, videoId, exclude, limit-int64(len(result)))
	if err != nil {
		return nil, err
	}
	collect(videos)

	if int64(len(result)) < limit && current.Category != "" {
		videos, err = db.GetVideosByCategory(service.ctx, current.Category, exclude, limit-int64(len(result)))
		if err != nil {
			return nil, err
		}
		collect(videos)
	}

	if int64(len(result)) < limit {
		videos, err = db.GetVideosByAuthor(service.ctx, current.UserId, exclude, limit-int64(len(result)))
		if err != nil {
			return nil, err
		}
		collect(videos)
	}

	if int64(len(result)) < limit {
		videos, err = db.GetVideosByPopularity(service.ctx, exclude, limit-int64(len(result)))
		if err != nil {
			return nil, err
		}
		collect(videos)
	}

	hlog.CtxDebugf(service.ctx, "recommend for video %d returned %d items", videoId, len(result))
	return result, nil
}
