package repository

import (
	"context"

	commentdomain "findit-backend/internal/comment/domain"
)

// CommentRepository defines the interface for comment storage
type CommentRepository interface {
	Create(ctx context.Context, comment *commentdomain.Comment) error
	// FindByPostWithAuthor returns comments oldest first.
	FindByPostWithAuthor(ctx context.Context, postID string) ([]commentdomain.Comment, error)
}
