package repository

import (
	"context"

	authdomain "findit-backend/internal/auth/domain"
)

// UserRepository defines the interface for user persistence.
// Find methods return nil, nil when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *authdomain.User) error
	FindByEmail(ctx context.Context, email string) (*authdomain.User, error)
	FindByID(ctx context.Context, id string) (*authdomain.User, error)
	UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) error
}
