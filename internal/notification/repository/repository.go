package repository

import (
	"context"
	"time"

	notificationdomain "findit-backend/internal/notification/domain"
)

// TokenRepository defines the interface for FCM token storage
type TokenRepository interface {
	// Save registers token for its UserID. An existing row with the same token
	// is reassigned to the new user.
	Save(ctx context.Context, token *notificationdomain.FCMToken) error
	FindByToken(ctx context.Context, token string) (*notificationdomain.FCMToken, error)
	// Delete removes token only if it belongs to userID.
	Delete(ctx context.Context, userID, token string) (int64, error)
	DeleteTokens(ctx context.Context, tokens []string) (int64, error)
	// LatestByUserIDs returns at most one token per user, the most recently refreshed.
	LatestByUserIDs(ctx context.Context, userIDs []string) ([]notificationdomain.FCMToken, error)
	DeleteStale(ctx context.Context, before time.Time) (int64, error)
}
