package repository

import (
	"context"
	"errors"
	"time"

	notificationdomain "findit-backend/internal/notification/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new gorm-backed FCM token repository
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Save(ctx context.Context, token *notificationdomain.FCMToken) error {
	now := time.Now()
	token.ID = uuid.New().String()
	token.CreatedAt = now
	token.UpdatedAt = now

	return r.db.WithContext(ctx).Omit("User").Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "device_info", "updated_at"}),
	}).Create(token).Error
}

func (r *tokenRepository) FindByToken(ctx context.Context, token string) (*notificationdomain.FCMToken, error) {
	var t notificationdomain.FCMToken
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *tokenRepository) Delete(ctx context.Context, userID, token string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND token = ?", userID, token).
		Delete(&notificationdomain.FCMToken{})
	return result.RowsAffected, result.Error
}

func (r *tokenRepository) DeleteTokens(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Where("token IN ?", tokens).Delete(&notificationdomain.FCMToken{})
	return result.RowsAffected, result.Error
}

func (r *tokenRepository) LatestByUserIDs(ctx context.Context, userIDs []string) ([]notificationdomain.FCMToken, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var rows []notificationdomain.FCMToken
	err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("updated_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(rows))
	latest := make([]notificationdomain.FCMToken, 0, len(userIDs))
	for _, t := range rows {
		if seen[t.UserID] {
			continue
		}
		seen[t.UserID] = true
		latest = append(latest, t)
	}
	return latest, nil
}

func (r *tokenRepository) DeleteStale(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("updated_at < ?", before).Delete(&notificationdomain.FCMToken{})
	return result.RowsAffected, result.Error
}
