package repository

import (
	"context"
	"errors"
	"time"

	postdomain "findit-backend/internal/post/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new gorm-backed post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *postdomain.Post) error {
	now := time.Now()
	post.ID = uuid.New().String()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.Status == "" {
		post.Status = postdomain.PostStatusActive
	}
	return r.db.WithContext(ctx).Omit("Author", "Group").Create(post).Error
}

func (r *postRepository) FindByID(ctx context.Context, id string) (*postdomain.Post, error) {
	var post postdomain.Post
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) FindByGroupWithAuthor(ctx context.Context, groupID string) ([]postdomain.Post, error) {
	var posts []postdomain.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("group_id = ?", groupID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) UpdateStatus(ctx context.Context, id string, status postdomain.PostStatus) error {
	return r.db.WithContext(ctx).
		Model(&postdomain.Post{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()}).Error
}
