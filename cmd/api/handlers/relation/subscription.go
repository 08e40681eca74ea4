package handlers

import (
	"context"

	"WeTube.com/cmd/api/router/authfunc"
	catalogdb "WeTube.com/cmd/catalog/dal/db"
	catalog "WeTube.com/cmd/catalog/service"
	"WeTube.com/cmd/relation/service"
	"WeTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// SubscribeAction toggles the caller's subscription to a channel.
func SubscribeAction(ctx context.Context, c *app.RequestContext) {
	channelId, err := userIdParam(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	userId := authfunc.CurrentUserId(ctx, c)
	if userId == 0 {
		SendResponse(c, errno.AuthorizationErr, nil)
		return
	}
	isSubscribed, count, err := service.NewRelationService(ctx).ToggleSubscription(userId, channelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"is_subscribed":    isSubscribed,
		"subscriber_count": count,
	})
}

// SubscribeStatus reports whether the caller follows the channel.
func SubscribeStatus(ctx context.Context, c *app.RequestContext) {
	channelId, err := userIdParam(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	userId := authfunc.CurrentUserId(ctx, c)
	relationService := service.NewRelationService(ctx)
	isSubscribed, err := relationService.IsSubscribed(userId, channelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	count, err := relationService.SubscriberCount(channelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"is_subscribed":    isSubscribed,
		"subscriber_count": count,
	})
}

// SubscriptionFeed lists videos from every channel the caller follows. An
// empty follow set yields an empty page, not the whole catalog.
func SubscriptionFeed(ctx context.Context, c *app.RequestContext) {
	var param FeedParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := authfunc.CurrentUserId(ctx, c)
	if userId == 0 {
		SendResponse(c, errno.AuthorizationErr, nil)
		return
	}
	channelIds, err := service.NewRelationService(ctx).SubscribedChannelIds(userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if channelIds == nil {
		channelIds = []int64{}
	}
	params := &catalogdb.VideoListParams{
		Page:     param.Page,
		PageSize: param.PageSize,
		Sort:     param.Sort,
		UserIds:  channelIds,
	}
	videos, meta, err := catalog.NewVideoListService(ctx).VideoList(params)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"items":      videos,
		"pagination": meta,
	})
}
