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

func videoIdParam(c *app.RequestContext) (int64, error) {
	videoId, err := strconv.ParseInt(c.Param("video_id"), 10, 64)
	if err != nil || videoId <= 0 {
		return 0, errno.ParamErr.WithMessage("Invalid video id")
	}
	return videoId, nil
}

func commentIdParam(c *app.RequestContext) (int64, error) {
	commentId, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil || commentId <= 0 {
		return 0, errno.ParamErr.WithMessage("Invalid comment id")
	}
	return commentId, nil
}

type CreateCommentParam struct {
	Content string `form:"content"`
}

type EditCommentParam struct {
	Content string `form:"content"`
}
