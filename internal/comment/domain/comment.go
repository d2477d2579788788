package domain

import (
	"time"

	authdomain "findit-backend/internal/auth/domain"
	postdomain "findit-backend/internal/post/domain"
)

// Comment is immutable once written.
type Comment struct {
	ID        string           `json:"id" gorm:"primaryKey"`
	Content   string           `json:"content" gorm:"type:text;not null"`
	PostID    string           `json:"postId" gorm:"index;not null"`
	Post      *postdomain.Post `json:"-" gorm:"foreignKey:PostID"`
	AuthorID  string           `json:"authorId" gorm:"index;not null"`
	Author    *authdomain.User `json:"-" gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time        `json:"createdAt"`
}
