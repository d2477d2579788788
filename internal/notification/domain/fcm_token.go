package domain

import (
	"time"

	authdomain "findit-backend/internal/auth/domain"
)

// FCMToken represents a Firebase Cloud Messaging device token for push notifications.
// A token belongs to exactly one user; re-registering it moves it to the new user.
type FCMToken struct {
	ID         string           `json:"id" gorm:"primaryKey"`
	UserID     string           `json:"userId" gorm:"index;not null"`
	User       *authdomain.User `json:"-" gorm:"foreignKey:UserID"`
	Token      string           `json:"-" gorm:"uniqueIndex;not null"` // Don't expose token in JSON
	DeviceInfo string           `json:"deviceInfo,omitempty"`          // Browser/device metadata
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt" gorm:"index"`
}

// Payload is one logical notification fanned out to a group.
type Payload struct {
	Title string
	Body  string
	Data  map[string]string
}
