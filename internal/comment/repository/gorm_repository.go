package repository

import (
	"context"
	"time"

	commentdomain "findit-backend/internal/comment/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *commentdomain.Comment) error {
	comment.ID = uuid.New().String()
	comment.CreatedAt = time.Now()
	return r.db.WithContext(ctx).Omit("Author", "Post").Create(comment).Error
}

func (r *commentRepository) FindByPostWithAuthor(ctx context.Context, postID string) ([]commentdomain.Comment, error) {
	var comments []commentdomain.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}
