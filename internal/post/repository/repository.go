package repository

import (
	"context"

	postdomain "findit-backend/internal/post/domain"
)

// PostRepository defines the interface for post storage
type PostRepository interface {
	Create(ctx context.Context, post *postdomain.Post) error
	FindByID(ctx context.Context, id string) (*postdomain.Post, error)
	// FindByGroupWithAuthor returns the group's posts newest first.
	FindByGroupWithAuthor(ctx context.Context, groupID string) ([]postdomain.Post, error)
	UpdateStatus(ctx context.Context, id string, status postdomain.PostStatus) error
}
