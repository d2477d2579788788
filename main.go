package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	api "findit-backend/cmd/api"
	authRepo "findit-backend/internal/auth/repository"
	authUsecase "findit-backend/internal/auth/usecase"
	commentRepo "findit-backend/internal/comment/repository"
	commentUsecase "findit-backend/internal/comment/usecase"
	groupRepo "findit-backend/internal/group/repository"
	groupUsecase "findit-backend/internal/group/usecase"
	"findit-backend/internal/notification"
	notificationRepo "findit-backend/internal/notification/repository"
	postRepo "findit-backend/internal/post/repository"
	postUsecase "findit-backend/internal/post/usecase"
	"findit-backend/internal/schema"
	statsRepo "findit-backend/internal/stats/repository"
	statsUsecase "findit-backend/internal/stats/usecase"
	"findit-backend/pkg/cache"
	"findit-backend/pkg/cloudinary"
	"findit-backend/pkg/config"
	"findit-backend/pkg/database"
	"findit-backend/pkg/fcm"
	"findit-backend/pkg/logger"
	"findit-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	gin.SetMode(cfg.GinMode)
	if err := validation.Register(); err != nil {
		log.WithError(err).Fatal("failed to register validators")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.New(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	// Auto-migrate database schemas
	if err := schema.Migrate(db); err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	groupRepository := groupRepo.NewGroupRepository(db)
	postRepository := postRepo.NewPostRepository(db)
	commentRepository := commentRepo.NewCommentRepository(db)
	tokenRepository := notificationRepo.NewTokenRepository(db)
	statsRepository := statsRepo.NewStatsRepository(db)

	// Push notifications are optional; without credentials group sends are skipped.
	var push notification.PushSender
	if cfg.FirebaseCredentials != "" {
		fcmClient, err := fcm.NewClient(ctx, cfg.FirebaseCredentials, log)
		if err != nil {
			log.WithError(err).Warn("failed to initialize FCM client, push notifications disabled")
		} else {
			push = fcmClient
		}
	} else {
		log.Warn("FIREBASE_CREDENTIALS not set, push notifications disabled")
	}

	var images authUsecase.ImageDeleter
	if cfg.CloudinaryEnabled() {
		cld, err := cloudinary.NewClient(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			log.WithError(err).Warn("failed to initialize cloudinary, old images will not be deleted")
		} else {
			images = cld
		}
	}

	var statsCache statsUsecase.Cache
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, "findit:")
		if err != nil {
			log.WithError(err).Warn("redis unavailable, stats will not be cached")
		} else {
			defer redisCache.Close()
			statsCache = redisCache
		}
	}

	notificationService := notification.NewService(tokenRepository, groupRepository, push, log)
	dispatcher := notification.NewDispatcher(notificationService, cfg.NotificationWorkers, cfg.NotificationQueueSize, cfg.NotificationTimeout, log)
	dispatcher.Start()

	pruner := notification.NewTokenPruner(tokenRepository, cfg.TokenPruneSchedule, cfg.TokenMaxAge, log)
	if err := pruner.Start(); err != nil {
		log.WithError(err).Fatal("failed to start token pruner")
	}

	// Initialize use cases (dependency injection)
	usecases := api.Usecases{
		Auth:          authUsecase.NewAuthUsecase(userRepository, images, cfg.JWTSecret, cfg.JWTExpiry, log),
		Group:         groupUsecase.NewGroupUsecase(groupRepository, log),
		Post:          postUsecase.NewPostUsecase(postRepository, groupRepository, dispatcher, log),
		Comment:       commentUsecase.NewCommentUsecase(commentRepository, postRepository, groupRepository),
		Stats:         statsUsecase.NewStatsUsecase(statsRepository, statsCache, cfg.StatsCacheTTL, log),
		Notifications: notificationService,
	}

	// Initialize HTTP handler
	handler := api.NewHandler(usecases, cfg, log)

	// Start server
	if err := handler.Start(ctx, ":"+cfg.Port); err != nil {
		log.WithError(err).Error("server error")
	}

	pruner.Stop()
	dispatcher.Stop()
	log.Info("shutdown complete")
}
