package handlers

import (
	"context"

	"WeTube.com/cmd/catalog/dal/db"
	"WeTube.com/cmd/catalog/service"
	"WeTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// VideoList serves the catalog feed: filters compose, unknown tags come back
// as an empty page instead of an error.
func VideoList(ctx context.Context, c *app.RequestContext) {
	var err error
	var param VideoListParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	params := &db.VideoListParams{
		Page:     param.Page,
		PageSize: param.PageSize,
		Sort:     param.Sort,
		Category: param.Category,
		Keyword:  param.Keyword,
		TagName:  param.Tag,
	}
	videos, meta, err := service.NewVideoListService(ctx).VideoList(params)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewTagSaveService(ctx).AttachTags(videos); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"items":      videos,
		"pagination": meta,
	})
}
