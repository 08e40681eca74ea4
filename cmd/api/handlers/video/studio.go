package handlers

import (
	"context"
	"path/filepath"

	"WeTube.com/cmd/api/router/authfunc"
	"WeTube.com/cmd/catalog/service"
	"WeTube.com/cmd/model"
	"WeTube.com/pkg/errno"
	"WeTube.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// PublishVideo uploads the blobs to object storage, then persists the row and
// its tag links.
func PublishVideo(ctx context.Context, c *app.RequestContext) {
	var err error
	var param PublishVideoParam
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

	fileHeader, err := c.FormFile("video")
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("Video file is required"), nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	defer file.Close()
	ext := filepath.Ext(fileHeader.Filename)
	videoPath, err := oss.UploadVideo(ctx, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"), ext)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	var thumbnailPath string
	if thumbHeader, err := c.FormFile("thumbnail"); err == nil {
		thumb, err := thumbHeader.Open()
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		defer thumb.Close()
		thumbnailPath, err = oss.UploadThumbnail(ctx, thumb, thumbHeader.Size, thumbHeader.Header.Get("Content-Type"))
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
	}

	video := &model.Video{
		UserId:        userId,
		Title:         param.Title,
		Description:   param.Description,
		Category:      param.Category,
		VideoPath:     videoPath,
		ThumbnailPath: thumbnailPath,
		Duration:      param.Duration,
	}
	if err := service.NewVideoListService(ctx).CreateVideo(video); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewTagSaveService(ctx).SaveVideoTags(video.VideoId, param.Tags); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}

// UpdateVideo edits metadata and replaces the tag set. Owner only.
func UpdateVideo(ctx context.Context, c *app.RequestContext) {
	videoId, err := videoIdParam(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var param UpdateVideoParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := authfunc.CurrentUserId(ctx, c)
	videoService := service.NewVideoListService(ctx)
	if err := videoService.UpdateVideo(videoId, userId, param.Title, param.Description, param.Category); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewTagSaveService(ctx).SaveVideoTags(videoId, param.Tags); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	video, err := videoService.VideoDetail(videoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}

// DeleteVideo removes an owned video, its dependents and its stored blobs.
func DeleteVideo(ctx context.Context, c *app.RequestContext) {
	videoId, err := videoIdParam(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	userId := authfunc.CurrentUserId(ctx, c)
	videoService := service.NewVideoListService(ctx)
	video, err := videoService.VideoInfo(videoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := videoService.DeleteVideo(videoId, userId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := oss.RemoveVideoObjects(ctx, video.VideoPath, video.ThumbnailPath); err != nil {
		hlog.CtxWarnf(ctx, "remove video objects failed: %v", err)
	}
	SendResponse(c, errno.Success, nil)
}
