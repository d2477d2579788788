package domain

import (
	"time"

	authdomain "findit-backend/internal/auth/domain"
)

// CodeLength is the length of a group join code.
const CodeLength = 6

// Group is a community whose members share visibility into its posts.
type Group struct {
	ID            string           `json:"id" gorm:"primaryKey"`
	Name          string           `json:"name" gorm:"not null"`
	Code          string           `json:"code" gorm:"size:6;uniqueIndex;not null"`
	GroupImageURL string           `json:"groupImageUrl,omitempty"`
	CreatorID     string           `json:"creatorId" gorm:"index;not null"`
	Creator       *authdomain.User `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`
	Members       []GroupMember    `json:"-" gorm:"foreignKey:GroupID"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// GroupMember is one (user, group) membership. The pair is unique.
type GroupMember struct {
	ID        string           `json:"id" gorm:"primaryKey"`
	UserID    string           `json:"userId" gorm:"not null;uniqueIndex:idx_user_group"`
	GroupID   string           `json:"groupId" gorm:"not null;index;uniqueIndex:idx_user_group"`
	User      *authdomain.User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt time.Time        `json:"createdAt"`
}
