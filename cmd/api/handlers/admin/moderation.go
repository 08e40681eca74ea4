package handlers

import (
	"context"

	catalog "WeTube.com/cmd/catalog/service"
	interaction "WeTube.com/cmd/interaction/service"
	"WeTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// ListUsers pages through accounts, optionally filtered by username keyword.
func ListUsers(ctx context.Context, c *app.RequestContext) {
	var param SearchParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	users, meta, err := catalog.NewAdminListService(ctx).Users(param.Keyword, param.Page)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"items":      users,
		"pagination": meta,
	})
}

// ListVideos pages through the whole catalog for moderation, searching title
// and uploader name.
func ListVideos(ctx context.Context, c *app.RequestContext) {
	var param SearchParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videos, meta, err := catalog.NewAdminListService(ctx).Videos(param.Keyword, param.Page)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"items":      videos,
		"pagination": meta,
	})
}

// ListComments pages through comments for moderation.
func ListComments(ctx context.Context, c *app.RequestContext) {
	var param SearchParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	comments, meta, err := catalog.NewAdminListService(ctx).Comments(param.Keyword, param.Page)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"items":      comments,
		"pagination": meta,
	})
}

// DeleteUser removes an account and everything it produced.
func DeleteUser(ctx context.Context, c *app.RequestContext) {
	userId, err := pathIdParam(c, "user_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	if err := catalog.NewAdminListService(ctx).DeleteUser(userId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// DeleteVideo removes any video without an ownership check.
func DeleteVideo(ctx context.Context, c *app.RequestContext) {
	videoId, err := pathIdParam(c, "video_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	if err := catalog.NewVideoListService(ctx).AdminDeleteVideo(videoId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// DeleteComment removes any comment subtree without an ownership check.
func DeleteComment(ctx context.Context, c *app.RequestContext) {
	commentId, err := pathIdParam(c, "comment_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	if err := interaction.NewCommentService(ctx).AdminDeleteComment(commentId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
