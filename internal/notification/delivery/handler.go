package delivery

import (
	"context"
	"net/http"

	notificationdomain "findit-backend/internal/notification/domain"
	"findit-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// TokenService is the subset of the notification service used over HTTP.
type TokenService interface {
	SaveToken(ctx context.Context, userID, token, deviceInfo string) (*notificationdomain.FCMToken, error)
	DeleteToken(ctx context.Context, userID, token string) error
}

type RegisterTokenRequest struct {
	Token      string `json:"token" binding:"required"`
	DeviceInfo string `json:"deviceInfo" binding:"max=255"`
}

type DeleteTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// NotificationHandler handles FCM token registration
type NotificationHandler struct {
	tokens TokenService
	log    logrus.FieldLogger
}

func NewNotificationHandler(tokens TokenService, log logrus.FieldLogger) *NotificationHandler {
	return &NotificationHandler{tokens: tokens, log: log}
}

// SaveToken registers the device token for the caller
// POST /notifications/tokens
func (h *NotificationHandler) SaveToken(c *gin.Context) {
	var req RegisterTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	token, err := h.tokens.SaveToken(c.Request.Context(), c.GetString("userID"), req.Token, req.DeviceInfo)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "FCM token saved successfully", "fcmToken": token})
}

// DeleteToken unregisters the caller's device token
// DELETE /notifications/tokens
func (h *NotificationHandler) DeleteToken(c *gin.Context) {
	var req DeleteTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if err := h.tokens.DeleteToken(c.Request.Context(), c.GetString("userID"), req.Token); err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "FCM token deleted successfully"})
}
