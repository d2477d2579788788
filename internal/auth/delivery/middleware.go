package delivery

import (
	"net/http"
	"strings"

	"findit-backend/internal/auth/usecase"
	"findit-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AuthMiddleware resolves the bearer token to a user and stores it on the
// context under "user", with its id under "userID".
func AuthMiddleware(authUsecase usecase.AuthUsecase, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: No token provided"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: No token provided"})
			return
		}

		user, err := authUsecase.ValidateToken(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			response.Error(c, log, err)
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Next()
	}
}
