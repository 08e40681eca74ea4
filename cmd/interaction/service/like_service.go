package service

import (
	"context"

	"WeTube.com/cmd/interaction/dal/db"
)

type LikeActionService struct {
	ctx context.Context
}

func NewLikeActionService(ctx context.Context) *LikeActionService {
	return &LikeActionService{ctx: ctx}
}

// ToggleLike flips the caller's like on the video and returns the new state
// with the refreshed count. Toggling twice lands back on the original state.
func (service *LikeActionService) ToggleLike(videoId, userId int64) (isLiked bool, count int64, err error) {
	return db.ToggleVideoLike(service.ctx, videoId, userId)
}

// LikeStatus reports (isLiked, count). userId 0 means anonymous, for whom
// isLiked is always false.
func (service *LikeActionService) LikeStatus(videoId, userId int64) (isLiked bool, count int64, err error) {
	if _, err = db.GetVideoInfo(service.ctx, videoId); err != nil {
		return false, 0, err
	}
	count, err = db.GetVideoLikeCount(service.ctx, videoId)
	if err != nil {
		return false, 0, err
	}
	if userId == 0 {
		return false, count, nil
	}
	isLiked, err = db.IsVideoLikedByUser(service.ctx, videoId, userId)
	if err != nil {
		return false, 0, err
	}
	return isLiked, count, nil
}
