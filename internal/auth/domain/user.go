package domain

import "time"

type User struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"not null"`
	Email           string    `json:"email" gorm:"uniqueIndex;not null"`
	Password        string    `json:"-" gorm:"not null"` // Never return password in JSON
	Phone           string    `json:"phone,omitempty" gorm:"size:10"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
