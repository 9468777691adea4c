package router

import (
	"video_library_service/internal/api/handlers"
	"video_library_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Handlers everything RegisterRoutes wires up
type Handlers struct {
	User         *handlers.UserHandler
	Video        *handlers.VideoHandler
	Comment      *handlers.CommentHandler
	Tweet        *handlers.TweetHandler
	Like         *handlers.LikeHandler
	Subscription *handlers.SubscriptionHandler
	Playlist     *handlers.PlaylistHandler
	Dashboard    *handlers.DashboardHandler
}

// RegisterRoutes register all routes under /api/v1
// @title Video Library Service API
// @version 1.0
// @description API documentation for Video Library Service
// @host localhost:8080
// @BasePath /api/v1
func RegisterRoutes(app *fiber.App, h Handlers) {
	app.Get("/swagger/*", swagger.HandlerDefault)

	v1 := app.Group("/api/v1")

	health := v1.Group("/healthcheck")
	health.Get("/check", handlers.HealthCheck)
	health.Post("/debug", handlers.DebugLogFlag)

	jwt := middlewares.JWTMiddleware()

	users := v1.Group("/users")
	users.Post("/register", h.User.Register)
	users.Post("/login", h.User.Login)
	users.Post("/refresh-token", h.User.RefreshToken)
	users.Use(jwt)
	users.Post("/logout", h.User.Logout)
	users.Post("/change-password", h.User.ChangePassword)
	users.Get("/get-user", h.User.CurrentUser)
	users.Patch("/update-account", h.User.UpdateAccount)
	users.Patch("/avatar", h.User.UpdateAvatar)
	users.Patch("/cover-image", h.User.UpdateCoverImage)
	users.Get("/c/:username", h.User.Channel)
	users.Get("/history", h.User.WatchHistory)

	video := v1.Group("/video", jwt)
	video.Get("/", h.Video.List)
	video.Post("/", h.Video.Publish)
	video.Get("/c/:username", h.Video.ByChannel)
	video.Patch("/toggle/publish/:video_id", h.Video.TogglePublish)
	video.Get("/:video_id", h.Video.Get)
	video.Patch("/:video_id", h.Video.Update)
	video.Delete("/:video_id", h.Video.Delete)

	comment := v1.Group("/comment", jwt)
	comment.Get("/:video_id", h.Comment.ListByVideo)
	comment.Post("/:video_id", h.Comment.Add)
	comment.Patch("/c/:comment_id", h.Comment.Update)
	comment.Delete("/c/:comment_id", h.Comment.Delete)

	tweet := v1.Group("/tweet", jwt)
	tweet.Post("/", h.Tweet.Create)
	tweet.Get("/user/:user_id", h.Tweet.ListByUser)
	tweet.Patch("/:tweet_id", h.Tweet.Update)
	tweet.Delete("/:tweet_id", h.Tweet.Delete)

	like := v1.Group("/like", jwt)
	like.Post("/toggle/v/:video_id", h.Like.ToggleVideo)
	like.Post("/toggle/c/:comment_id", h.Like.ToggleComment)
	like.Post("/toggle/t/:tweet_id", h.Like.ToggleTweet)
	like.Get("/videos", h.Like.LikedVideos)

	subscription := v1.Group("/subscription", jwt)
	subscription.Post("/c/:channel_id", h.Subscription.Toggle)
	subscription.Get("/c/:channel_id", h.Subscription.Subscribers)
	subscription.Get("/u/:subscriber_id", h.Subscription.Channels)

	playlist := v1.Group("/playlist", jwt)
	playlist.Post("/", h.Playlist.Create)
	playlist.Get("/user/:user_id", h.Playlist.ListByUser)
	playlist.Patch("/add/:playlist_id/:video_id", h.Playlist.AddVideo)
	playlist.Patch("/remove/:playlist_id/:video_id", h.Playlist.RemoveVideo)
	playlist.Get("/:playlist_id", h.Playlist.Get)
	playlist.Patch("/:playlist_id", h.Playlist.Update)
	playlist.Delete("/:playlist_id", h.Playlist.Delete)

	dashboard := v1.Group("/dashboard", jwt)
	dashboard.Get("/stats", h.Dashboard.Stats)
	dashboard.Get("/videos", h.Dashboard.Videos)
}
