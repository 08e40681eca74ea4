package router

import (
	admin "WeTube.com/cmd/api/handlers/admin"
	interaction "WeTube.com/cmd/api/handlers/interaction"
	relation "WeTube.com/cmd/api/handlers/relation"
	video "WeTube.com/cmd/api/handlers/video"
	"WeTube.com/cmd/api/router/authfunc"
	"github.com/cloudwego/hertz/pkg/app/server"
)

// Register wires every route. Public reads carry an optional identity so the
// like/subscribe status endpoints personalize when a token is present; writes
// sit behind the JWT middleware.
func Register(r *server.Hertz) {
	api := r.Group("/api")
	api.Use(authfunc.OptionalIdentity())

	videos := api.Group("/videos")
	videos.GET("", video.VideoList)
	videos.GET("/:video_id", video.VideoDetail)
	videos.GET("/:video_id/related", video.RelatedVideos)
	videos.GET("/:video_id/comments", interaction.ListComments)
	videos.GET("/:video_id/like/status", interaction.LikeStatus)

	tags := api.Group("/tags")
	tags.GET("/popular", video.PopularTags)
	tags.GET("/:name/videos", video.TagVideos)

	users := api.Group("/users")
	users.GET("/:username", video.ChannelInfo)
	users.GET("/:username/videos", video.ChannelVideos)
	users.GET("/id/:user_id/subscribe/status", relation.SubscribeStatus)

	auth := api.Group("")
	auth.Use(authfunc.AuthMiddleware.MiddlewareFunc())
	auth.POST("/videos/:video_id/like", interaction.LikeAction)
	auth.POST("/videos/:video_id/comments", interaction.CreateComment)
	auth.POST("/comments/:comment_id/replies", interaction.ReplyComment)
	auth.PUT("/comments/:comment_id", interaction.EditComment)
	auth.DELETE("/comments/:comment_id", interaction.DeleteComment)
	auth.POST("/users/id/:user_id/subscribe", relation.SubscribeAction)
	auth.GET("/subscriptions/feed", relation.SubscriptionFeed)

	studio := api.Group("/studio")
	studio.Use(authfunc.AuthMiddleware.MiddlewareFunc())
	studio.POST("/videos", video.PublishVideo)
	studio.PUT("/videos/:video_id", video.UpdateVideo)
	studio.DELETE("/videos/:video_id", video.DeleteVideo)

	adminGroup := api.Group("/admin")
	adminGroup.Use(authfunc.AuthMiddleware.MiddlewareFunc(), authfunc.AdminRequired())
	adminGroup.GET("/users", admin.ListUsers)
	adminGroup.GET("/videos", admin.ListVideos)
	adminGroup.GET("/comments", admin.ListComments)
	adminGroup.DELETE("/users/:user_id", admin.DeleteUser)
	adminGroup.DELETE("/videos/:video_id", admin.DeleteVideo)
	adminGroup.DELETE("/comments/:comment_id", admin.DeleteComment)
}
