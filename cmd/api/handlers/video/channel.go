package handlers

import (
	"context"

	"WeTube.com/cmd/catalog/dal/db"
	"WeTube.com/cmd/catalog/service"
	"WeTube.com/pkg/constants"
	"WeTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// ChannelInfo serves a channel's public profile with aggregate stats.
func ChannelInfo(ctx context.Context, c *app.RequestContext) {
	username := c.Param("username")
	if username == "" {
		SendResponse(c, errno.ParamErr.WithMessage("Username is required"), nil)
		return
	}
	statsService := service.NewChannelStatsService(ctx)
	user, err := statsService.UserByUsername(username)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	stats, err := statsService.Stats(user.UserId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"user":      user,
		"stats":     stats,
		"joined_at": user.CreatedAt.Format(constants.DataFormate),
	})
}

// ChannelVideos lists one channel's uploads.
func ChannelVideos(ctx context.Context, c *app.RequestContext) {
	username := c.Param("username")
	if username == "" {
		SendResponse(c, errno.ParamErr.WithMessage("Username is required"), nil)
		return
	}
	var param VideoListParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	user, err := service.NewChannelStatsService(ctx).UserByUsername(username)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	params := &db.VideoListParams{
		Page:     param.Page,
		PageSize: param.PageSize,
		Sort:     param.Sort,
		UserId:   user.UserId,
	}
	videos, meta, err := service.NewVideoListService(ctx).VideoList(params)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"items":      videos,
		"pagination": meta,
	})
}
