package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	commentapp "video_library_service/internal/comment/app"
	commentrepo "video_library_service/internal/comment/repository"
	dashboardapp "video_library_service/internal/dashboard/app"
	dashboardrepo "video_library_service/internal/dashboard/repository"
	likeapp "video_library_service/internal/like/app"
	likerepo "video_library_service/internal/like/repository"
	playlistapp "video_library_service/internal/playlist/app"
	playlistrepo "video_library_service/internal/playlist/repository"
	subscriptionapp "video_library_service/internal/subscription/app"
	subscriptionrepo "video_library_service/internal/subscription/repository"
	tweetapp "video_library_service/internal/tweet/app"
	tweetrepo "video_library_service/internal/tweet/repository"
	userapp "video_library_service/internal/user/app"
	userrepo "video_library_service/internal/user/repository"
	videoapp "video_library_service/internal/video/app"
	videorepo "video_library_service/internal/video/repository"

	"video_library_service/internal/api/handlers"
	"video_library_service/internal/api/router"
	"video_library_service/pkg/config"
	"video_library_service/pkg/database"
	"video_library_service/pkg/logger"
	"video_library_service/pkg/middlewares"
	testtool "video_library_service/pkg/test_tool"
	"video_library_service/pkg/token"

	"github.com/gofiber/fiber/v2"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.VideoLibrary, config.EnvConfig.VideoLibraryLogPath)
	cfg := config.LoadConfig[config.VideoLibrary](config.EnvConfig.VideoLibrary, config.EnvConfig.VideoLibraryYAMLPath)

	token.Configure(cfg.Auth.AccessSecret, cfg.Auth.RefreshSecret, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL)
	testtool.StartPprof()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	uri := fmt.Sprintf("mongodb://%s:%s@%s:%d", cfg.Mongo.User, cfg.Mongo.Password, cfg.Mongo.Host, cfg.Mongo.Port)
	mongoDB, err := database.NewMongoDB(ctx, database.Connection{
		ConnectStr: uri,

		RetryCount:    cfg.Mongo.RetryCount,
		RetryInterval: time.Duration(cfg.Mongo.RetryInterval) * time.Second,
	}, cfg.Mongo.Database)
	if err != nil {
		logger.Log.Fatal(
			"Unable to connect to mongo after retries",
			zap.String("address", fmt.Sprintf("[%s:%d]", cfg.Mongo.Host, cfg.Mongo.Port)),
			zap.Error(err),
		)
	}
	defer mongoDB.Close(context.Background())

	if err := mongoDB.EnsureIndexes(ctx,
		userrepo.EnsureUserIndexes,
		likerepo.EnsureLikeIndexes,
		subscriptionrepo.EnsureSubscriptionIndexes,
		playlistrepo.EnsurePlaylistIndexes,
	); err != nil {
		logger.Log.Fatal("Unable to create mongo indexes", zap.Error(err))
	}

	minioClient, err := database.NewMinIOConnection(database.MinIOConnection{
		Endpoint:   cfg.MinIO.Endpoint,
		User:       cfg.MinIO.User,
		Password:   cfg.MinIO.Password,
		BucketName: cfg.MinIO.Bucket,
		UseSSL:     cfg.MinIO.UseSSL,

		RetryCount:    cfg.MinIO.RetryCount,
		RetryInterval: time.Duration(cfg.MinIO.RetryInterval) * time.Second,
	})
	if err != nil {
		logger.Log.Fatal(
			"Unable to connect to minio after retries",
			zap.String("address", fmt.Sprintf("[%s]", cfg.MinIO.Endpoint)),
			zap.Error(err),
		)
	}

	userRepo := userrepo.NewUserRepository(mongoDB.Database)
	videoRepo := videorepo.NewVideoRepository(mongoDB.Database)
	commentRepo := commentrepo.NewCommentRepository(mongoDB.Database)
	tweetRepo := tweetrepo.NewTweetRepository(mongoDB.Database)
	likeRepo := likerepo.NewLikeRepository(mongoDB.Database)
	subscriptionRepo := subscriptionrepo.NewSubscriptionRepository(mongoDB.Database)
	playlistRepo := playlistrepo.NewPlaylistRepository(mongoDB.Database)
	dashboardRepo := dashboardrepo.NewDashboardRepository(mongoDB.Database)

	h := router.Handlers{
		User:         handlers.NewUserHandler(userapp.NewUserUseCase(userRepo, minioClient)),
		Video:        handlers.NewVideoHandler(videoapp.NewVideoUseCase(videoRepo, userRepo, minioClient, cfg.Limits.TmpDir)),
		Comment:      handlers.NewCommentHandler(commentapp.NewCommentUseCase(commentRepo, videoRepo)),
		Tweet:        handlers.NewTweetHandler(tweetapp.NewTweetUseCase(tweetRepo)),
		Like:         handlers.NewLikeHandler(likeapp.NewLikeUseCase(likeRepo)),
		Subscription: handlers.NewSubscriptionHandler(subscriptionapp.NewSubscriptionUseCase(subscriptionRepo, userRepo)),
		Playlist:     handlers.NewPlaylistHandler(playlistapp.NewPlaylistUseCase(playlistRepo, videoRepo)),
		Dashboard:    handlers.NewDashboardHandler(dashboardapp.NewDashboardUseCase(dashboardRepo, videoRepo)),
	}

	r := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
		BodyLimit:    cfg.Limits.UploadLimit,
	})

	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.VideoLibraryLogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer file.Close()

	r.Use(fiber_log.New(fiber_log.Config{
		Output: file,
	}))
	r.Use(middlewares.JSONBodyLimit(cfg.Limits.BodyLimit))

	router.RegisterRoutes(r, h)

	if err := r.Listen(":" + cfg.Port); err != nil {
		logger.Log.Fatal("Server failed to start", zap.Error(err))
	}
}
