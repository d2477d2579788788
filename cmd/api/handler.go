package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	authDelivery "findit-backend/internal/auth/delivery"
	authUsecase "findit-backend/internal/auth/usecase"
	commentDelivery "findit-backend/internal/comment/delivery"
	commentUsecase "findit-backend/internal/comment/usecase"
	groupDelivery "findit-backend/internal/group/delivery"
	groupUsecase "findit-backend/internal/group/usecase"
	notificationDelivery "findit-backend/internal/notification/delivery"
	postDelivery "findit-backend/internal/post/delivery"
	postUsecase "findit-backend/internal/post/usecase"
	statsDelivery "findit-backend/internal/stats/delivery"
	statsUsecase "findit-backend/internal/stats/usecase"
	"findit-backend/pkg/config"
	"findit-backend/pkg/logger"
	"findit-backend/pkg/metrics"
	"findit-backend/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Usecases groups everything the HTTP layer depends on.
type Usecases struct {
	Auth          authUsecase.AuthUsecase
	Group         groupUsecase.GroupUsecase
	Post          postUsecase.PostUsecase
	Comment       commentUsecase.CommentUsecase
	Stats         statsUsecase.StatsUsecase
	Notifications notificationDelivery.TokenService
}

type Handler struct {
	usecases    Usecases
	config      *config.Config
	log         logrus.FieldLogger
	authLimiter *ratelimit.Limiter

	authHandler         *authDelivery.AuthHandler
	groupHandler        *groupDelivery.GroupHandler
	postHandler         *postDelivery.PostHandler
	commentHandler      *commentDelivery.CommentHandler
	notificationHandler *notificationDelivery.NotificationHandler
	statsHandler        *statsDelivery.StatsHandler
}

func NewHandler(uc Usecases, cfg *config.Config, log logrus.FieldLogger) *Handler {
	return &Handler{
		usecases:    uc,
		config:      cfg,
		log:         log,
		authLimiter: ratelimit.New(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst, log.WithField("component", "ratelimit")),

		authHandler:         authDelivery.NewAuthHandler(uc.Auth, log),
		groupHandler:        groupDelivery.NewGroupHandler(uc.Group, log),
		postHandler:         postDelivery.NewPostHandler(uc.Post, log),
		commentHandler:      commentDelivery.NewCommentHandler(uc.Comment, log),
		notificationHandler: notificationDelivery.NewNotificationHandler(uc.Notifications, log),
		statsHandler:        statsDelivery.NewStatsHandler(uc.Stats, log),
	}
}

// Engine builds the gin engine with middleware and routes.
func (h *Handler) Engine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinMiddleware(h.log))
	r.Use(metrics.GinMiddleware())
	r.Use(corsMiddleware(h.config.CORSAllowedOrigins))

	SetupRoutes(r, h)
	return r
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (h *Handler) Start(ctx context.Context, addr string) error {
	stopCleanup := make(chan struct{})
	defer close(stopCleanup)
	h.authLimiter.StartCleanup(10*time.Minute, stopCleanup)

	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		h.log.WithField("addr", addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	h.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// corsMiddleware echoes the request origin when it is allowed. An empty
// allow-list accepts every origin.
func corsMiddleware(allowed []string) gin.HandlerFunc {
	allowedSet := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		allowedSet[o] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		switch {
		case origin == "" && len(allowedSet) == 0:
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		case origin != "" && (len(allowedSet) == 0 || allowedSet[origin]):
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Vary", "Origin")
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
