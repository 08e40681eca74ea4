package handlers

import (
	"context"

	"WeTube.com/cmd/api/router/authfunc"
	"WeTube.com/cmd/interaction/service"
	"WeTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// CreateComment posts a top-level comment on a video.
func CreateComment(ctx context.Context, c *app.RequestContext) {
	videoId, err := videoIdParam(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var param CreateCommentParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := authfunc.CurrentUserId(ctx, c)
	if userId == 0 {
		SendResponse(c, errno.AuthorizationErr, nil)
		return
	}
	comment, err := service.NewCommentService(ctx).CreateComment(videoId, userId, param.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comment)
}

// ReplyComment posts a reply under an existing comment. The reply is pinned to
// the parent's video regardless of what the client claims.
func ReplyComment(ctx context.Context, c *app.RequestContext) {
	parentId, err := commentIdParam(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var param CreateCommentParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := authfunc.CurrentUserId(ctx, c)
	if userId == 0 {
		SendResponse(c, errno.AuthorizationErr, nil)
		return
	}
	comment, err := service.NewCommentService(ctx).ReplyComment(parentId, userId, param.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comment)
}

// EditComment rewrites the caller's own comment.
func EditComment(ctx context.Context, c *app.RequestContext) {
	commentId, err := commentIdParam(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var param EditCommentParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := authfunc.CurrentUserId(ctx, c)
	if err := service.NewCommentService(ctx).EditComment(commentId, userId, param.Content); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// DeleteComment removes the caller's own comment and its whole reply subtree.
func DeleteComment(ctx context.Context, c *app.RequestContext) {
	commentId, err := commentIdParam(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	userId := authfunc.CurrentUserId(ctx, c)
	if err := service.NewCommentService(ctx).DeleteComment(commentId, userId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// ListComments serves the threaded comment tree for a video, oldest first with
// replies nested under their roots.
func ListComments(ctx context.Context, c *app.RequestContext) {
	videoId, err := videoIdParam(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	nodes, total, err := service.NewCommentService(ctx).ListComments(videoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"items": nodes,
		"total": total,
	})
}
