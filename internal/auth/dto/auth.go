package dto

import authdomain "findit-backend/internal/auth/domain"

type SignupRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	Phone           string `json:"phone" binding:"omitempty,phone"`
	ProfileImageURL string `json:"profileImageUrl" binding:"omitempty,url"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// UpdateProfileRequest uses pointers so an absent field is left unchanged.
// A present field is validated as sent, so an empty phone is rejected.
type UpdateProfileRequest struct {
	Phone           *string `json:"phone" binding:"omitempty,phone"`
	ProfileImageURL *string `json:"profileImageUrl" binding:"omitempty,url"`
}

type AuthResponse struct {
	Token string           `json:"token"`
	User  *authdomain.User `json:"user"`
}

type UpdateProfileResult struct {
	User    *authdomain.User
	Changed bool
}
