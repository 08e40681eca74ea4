package handlers

import (
	"context"

	"WeTube.com/cmd/catalog/dal/db"
	"WeTube.com/cmd/catalog/service"
	"WeTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// PopularTags serves the sidebar tag cloud, most-linked first.
func PopularTags(ctx context.Context, c *app.RequestContext) {
	var param PopularTagsParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	tags, err := service.NewTagSaveService(ctx).PopularTags(param.Limit)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"items": tags,
	})
}

// TagVideos lists one tag's videos, newest first.
func TagVideos(ctx context.Context, c *app.RequestContext) {
	tagName := c.Param("name")
	if tagName == "" {
		SendResponse(c, errno.ParamErr.WithMessage("Tag name is required"), nil)
		return
	}
	var param VideoListParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	params := &db.VideoListParams{
		Page:     param.Page,
		PageSize: param.PageSize,
		Sort:     param.Sort,
		TagName:  tagName,
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
