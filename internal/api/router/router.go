package router

import (
	"vidtube/internal/api/handler"
	"vidtube/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	videoHandler *handler.VideoHandler,
	commentHandler *handler.CommentHandler,
	tweetHandler *handler.TweetHandler,
	likeHandler *handler.LikeHandler,
	subscriptionHandler *handler.SubscriptionHandler,
	playlistHandler *handler.PlaylistHandler,
	dashboardHandler *handler.DashboardHandler,
	searchHandler *handler.SearchHandler,
) {
	v1 := r.Group("/api/v1")

	// --- 认证模块 ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
	}

	// --- 用户模块 ---
	users := v1.Group("/users")
	{
		users.GET("/:id/channel", middleware.AuthOptional(), userHandler.GetChannel)
		users.GET("/:id/tweets", tweetHandler.ListByUser)
		users.GET("/:id/playlists", playlistHandler.ListByUser)

		usersAuth := users.Group("", middleware.AuthRequired())
		{
			usersAuth.PATCH("/me", userHandler.UpdateProfile)
			usersAuth.PATCH("/me/password", userHandler.ChangePassword)
		}
	}

	// --- 视频模块 ---
	videos := v1.Group("/videos")
	{
		videos.GET("", videoHandler.List)
		videos.GET("/:id", videoHandler.Get)
		videos.GET("/:id/comments", commentHandler.List)

		videosAuth := videos.Group("", middleware.AuthRequired())
		{
			videosAuth.POST("", videoHandler.Publish)
			videosAuth.PATCH("/:id", videoHandler.Update)
			videosAuth.DELETE("/:id", videoHandler.Delete)
			videosAuth.PATCH("/:id/toggle-publish", videoHandler.TogglePublish)
			videosAuth.POST("/:id/comments", commentHandler.Create)
		}
	}

	// --- 评论模块 ---
	comments := v1.Group("/comments", middleware.AuthRequired())
	{
		comments.PATCH("/:id", commentHandler.Update)
		comments.DELETE("/:id", commentHandler.Delete)
	}

	// --- 动态模块 ---
	tweets := v1.Group("/tweets")
	{
		tweets.GET("", tweetHandler.List)

		tweetsAuth := tweets.Group("", middleware.AuthRequired())
		{
			tweetsAuth.POST("", tweetHandler.Create)
			tweetsAuth.PATCH("/:id", tweetHandler.Update)
			tweetsAuth.DELETE("/:id", tweetHandler.Delete)
		}
	}

	// --- 点赞模块 ---
	likes := v1.Group("/likes", middleware.AuthRequired())
	{
		likes.POST("/video/:id", likeHandler.ToggleVideo)
		likes.POST("/comment/:id", likeHandler.ToggleComment)
		likes.POST("/tweet/:id", likeHandler.ToggleTweet)
		likes.GET("/videos", likeHandler.GetLikedVideos)
	}

	// --- 订阅模块 ---
	subscriptions := v1.Group("/subscriptions")
	{
		subscriptions.GET("/channel/:id/subscribers", subscriptionHandler.ListSubscribers)

		subsAuth := subscriptions.Group("", middleware.AuthRequired())
		{
			subsAuth.POST("/channel/:id", subscriptionHandler.Toggle)
			subsAuth.GET("/channels", subscriptionHandler.ListSubscribed)
		}
	}

	// --- 播放列表模块 ---
	playlists := v1.Group("/playlists")
	{
		playlists.GET("/:id", playlistHandler.Get)

		playlistsAuth := playlists.Group("", middleware.AuthRequired())
		{
			playlistsAuth.POST("", playlistHandler.Create)
			playlistsAuth.PATCH("/:id", playlistHandler.Update)
			playlistsAuth.DELETE("/:id", playlistHandler.Delete)
			playlistsAuth.POST("/:id/videos/:video_id", playlistHandler.AddVideo)
			playlistsAuth.DELETE("/:id/videos/:video_id", playlistHandler.RemoveVideo)
		}
	}

	// --- 仪表盘模块 ---
	dashboard := v1.Group("/dashboard", middleware.AuthRequired())
	{
		dashboard.GET("/stats", dashboardHandler.GetStats)
		dashboard.GET("/videos", dashboardHandler.GetVideos)
	}

	// --- 搜索模块 ---
	v1.GET("/search/videos", searchHandler.SearchVideos)
}
