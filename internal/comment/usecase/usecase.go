package usecase

import (
	"context"

	commentdomain "findit-backend/internal/comment/domain"
	commentdto "findit-backend/internal/comment/dto"
)

// CommentUsecase defines the interface for comment operations
type CommentUsecase interface {
	AddComment(ctx context.Context, authorID string, req *commentdto.AddCommentRequest) (*commentdomain.Comment, error)
	GetCommentsByPostID(ctx context.Context, postID, callerID string) (*commentdto.PostComments, error)
}
