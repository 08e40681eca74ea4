package handlers

import (
	"context"
	"strconv"

	"WeTube.com/cmd/catalog/service"
	interaction "WeTube.com/cmd/interaction/service"
	"WeTube.com/pkg/errno"
	"WeTube.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func videoIdParam(c *app.RequestContext) (int64, error) {
	videoId, err := strconv.ParseInt(c.Param("video_id"), 10, 64)
	if err != nil || videoId <= 0 {
		return 0, errno.ParamErr.WithMessage("Invalid video id")
	}
	return videoId, nil
}

// VideoDetail serves the watch page payload and records the visit. A failed
// view bump is logged but never blocks the response.
func VideoDetail(ctx context.Context, c *app.RequestContext) {
	videoId, err := videoIdParam(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	if err := interaction.NewVisitService(ctx).RecordView(videoId); err != nil {
		if errno.Is(err, errno.NotFoundErr) {
			SendResponse(c, err, nil)
			return
		}
		hlog.CtxWarnf(ctx, "record view failed: %v", err)
	}
	video, err := service.NewVideoListService(ctx).VideoDetail(videoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	tags, err := service.NewTagSaveService(ctx).VideoTags(videoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	video.Tags = tags
	commentCount, err := interaction.NewCommentService(ctx).CommentCount(videoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"video":         video,
		"video_url":     oss.VideoURL(video.VideoPath),
		"thumbnail_url": oss.ThumbnailURL(video.ThumbnailPath),
		"comment_count": commentCount,
	})
}

// RelatedVideos serves the recommendation strip for the watch page.
func RelatedVideos(ctx context.Context, c *app.RequestContext) {
	videoId, err := videoIdParam(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var param RelatedParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videos, err := service.NewRecommendVideoService(ctx).Recommend(videoId, param.Limit)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"items": videos,
	})
}
