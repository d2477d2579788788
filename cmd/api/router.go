package api

import (
	"net/http"

	authDelivery "findit-backend/internal/auth/delivery"
	"findit-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	requireAuth := authDelivery.AuthMiddleware(h.usecases.Auth, h.log)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.GET("/stats", h.statsHandler.GetStats)

	// Auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/signup", h.authLimiter.Middleware(), h.authHandler.Signup)
		auth.POST("/login", h.authLimiter.Middleware(), h.authHandler.Login)
		auth.PUT("/updateProfile", requireAuth, h.authHandler.UpdateProfile)
	}

	// Group routes (protected)
	groups := r.Group("/groups")
	groups.Use(requireAuth)
	{
		groups.POST("/create", h.groupHandler.CreateGroup)
		groups.POST("/join", h.groupHandler.JoinGroup)
		groups.GET("/my-groups", h.groupHandler.GetUserGroups)
		groups.GET("/:groupId", h.groupHandler.GetGroupByID)
		groups.PUT("/:groupId", h.groupHandler.UpdateGroup)
		groups.GET("/:groupId/members", h.groupHandler.GetGroupMembers)
	}

	// Post routes (protected)
	posts := r.Group("/posts")
	posts.Use(requireAuth)
	{
		posts.POST("", h.postHandler.CreatePost)
		posts.GET("/group/:groupId", h.postHandler.GetPostsByGroupID)
		posts.PUT("/:postId/status", h.postHandler.UpdatePostStatus)
	}

	// Comment routes (protected)
	comments := r.Group("/comments")
	comments.Use(requireAuth)
	{
		comments.POST("", h.commentHandler.AddComment)
		comments.GET("/:postId", h.commentHandler.GetCommentsByPostID)
	}

	// Notification routes (protected)
	notifications := r.Group("/notifications")
	notifications.Use(requireAuth)
	{
		notifications.POST("/tokens", h.notificationHandler.SaveToken)
		notifications.DELETE("/tokens", h.notificationHandler.DeleteToken)
	}
}
