package domain

import (
	"time"

	authdomain "findit-backend/internal/auth/domain"
	groupdomain "findit-backend/internal/group/domain"
)

// PostType says whether the item was lost or found.
type PostType string

const (
	PostTypeLost  PostType = "LOST"
	PostTypeFound PostType = "FOUND"
)

// PostStatus moves freely between ACTIVE and CLAIMED; only the author may change it.
type PostStatus string

const (
	PostStatusActive  PostStatus = "ACTIVE"
	PostStatusClaimed PostStatus = "CLAIMED"
)

type Post struct {
	ID        string             `json:"id" gorm:"primaryKey"`
	Title     string             `json:"title" gorm:"not null"`
	Details   string             `json:"details" gorm:"type:text;not null"`
	PostType  PostType           `json:"postType" gorm:"size:5;not null"`
	ImageURL  string             `json:"imageUrl,omitempty"`
	Status    PostStatus         `json:"status" gorm:"size:7;not null;default:ACTIVE;index"`
	GroupID   string             `json:"groupId" gorm:"index;not null"`
	Group     *groupdomain.Group `json:"-" gorm:"foreignKey:GroupID"`
	AuthorID  string             `json:"authorId" gorm:"index;not null"`
	Author    *authdomain.User   `json:"-" gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
