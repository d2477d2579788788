package usecase

import (
	"context"

	authdomain "findit-backend/internal/auth/domain"
	authdto "findit-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for identity and profile operations
type AuthUsecase interface {
	Signup(ctx context.Context, req *authdto.SignupRequest) (*authdto.AuthResponse, error)
	Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.AuthResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *authdto.UpdateProfileRequest) (*authdto.UpdateProfileResult, error)

	// ValidateToken verifies a bearer token and returns the user it was issued to
	ValidateToken(ctx context.Context, token string) (*authdomain.User, error)
}

// ImageDeleter removes a previously hosted image. Failures are logged, never surfaced.
type ImageDeleter interface {
	DeleteImage(ctx context.Context, imageURL string) error
}
