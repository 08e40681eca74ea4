package handlers

import (
	"WeTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(consts.StatusOK, Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

type VideoListParam struct {
	Page     int64  `form:"page" query:"page"`
	PageSize int64  `form:"page_size" query:"page_size"`
	Sort     string `form:"sort" query:"sort"`
	Category string `form:"category" query:"category"`
	Keyword  string `form:"q" query:"q"`
	Tag      string `form:"tag" query:"tag"`
}

type RelatedParam struct {
	Limit int64 `form:"limit" query:"limit"`
}

type PopularTagsParam struct {
	Limit int64 `form:"limit" query:"limit"`
}

type PublishVideoParam struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Category    string `form:"category"`
	Tags        string `form:"tags"`
	Duration    int64  `form:"duration"`
}

type UpdateVideoParam struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Category    string `form:"category"`
	Tags        string `form:"tags"`
}
