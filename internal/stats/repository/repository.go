package repository

import (
	"context"
	"fmt"

	authdomain "findit-backend/internal/auth/domain"
	groupdomain "findit-backend/internal/group/domain"
	postdomain "findit-backend/internal/post/domain"
	statsdomain "findit-backend/internal/stats/domain"

	"gorm.io/gorm"
)

// StatsRepository computes aggregate counters
type StatsRepository interface {
	Counts(ctx context.Context) (*statsdomain.Stats, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Counts(ctx context.Context) (*statsdomain.Stats, error) {
	db := r.db.WithContext(ctx)
	var s statsdomain.Stats

	if err := db.Model(&authdomain.User{}).Count(&s.TotalUsers).Error; err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if err := db.Model(&groupdomain.Group{}).Count(&s.TotalGroups).Error; err != nil {
		return nil, fmt.Errorf("count groups: %w", err)
	}
	if err := db.Model(&postdomain.Post{}).Count(&s.TotalPosts).Error; err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}
	if err := db.Model(&postdomain.Post{}).Where("status = ?", postdomain.PostStatusClaimed).Count(&s.ReturnedItems).Error; err != nil {
		return nil, fmt.Errorf("count claimed posts: %w", err)
	}
	return &s, nil
}
