package handlers

import (
	"context"

	"WeTube.com/cmd/api/router/authfunc"
	"WeTube.com/cmd/interaction/service"
	"WeTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// LikeAction toggles the caller's like on a video and reports the recounted
// total.
func LikeAction(ctx context.Context, c *app.RequestContext) {
	videoId, err := videoIdParam(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	userId := authfunc.CurrentUserId(ctx, c)
	if userId == 0 {
		SendResponse(c, errno.AuthorizationErr, nil)
		return
	}
	isLiked, count, err := service.NewLikeActionService(ctx).ToggleLike(videoId, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"is_liked":   isLiked,
		"like_count": count,
	})
}

// LikeStatus reports whether the caller likes the video and its current count.
// Anonymous callers always read is_liked as false.
func LikeStatus(ctx context.Context, c *app.RequestContext) {
	videoId, err := videoIdParam(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	userId := authfunc.CurrentUserId(ctx, c)
	isLiked, count, err := service.NewLikeActionService(ctx).LikeStatus(videoId, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"is_liked":   isLiked,
		"like_count": count,
	})
}
