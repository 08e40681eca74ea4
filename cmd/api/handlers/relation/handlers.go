package handlers

import (
	"strconv"

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

func userIdParam(c *app.RequestContext) (int64, error) {
	userId, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || userId <= 0 {
		return 0, errno.ParamErr.WithMessage("Invalid user id")
	}
	return userId, nil
}

type FeedParam struct {
	Page     int64  `form:"page" query:"page"`
	PageSize int64  `form:"page_size" query:"page_size"`
	Sort     string `form:"sort" query:"sort"`
}
