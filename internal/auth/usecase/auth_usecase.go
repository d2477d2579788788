package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	authdomain "findit-backend/internal/auth/domain"
	authdto "findit-backend/internal/auth/dto"
	"findit-backend/internal/auth/repository"
	"findit-backend/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo     repository.UserRepository
	imageDeleter ImageDeleter
	jwtSecret    []byte
	jwtExpiry    time.Duration
	log          logrus.FieldLogger
}

// NewAuthUsecase creates a new instance of authUsecase. imageDeleter may be nil.
func NewAuthUsecase(userRepo repository.UserRepository, imageDeleter ImageDeleter, jwtSecret string, jwtExpiry time.Duration, log logrus.FieldLogger) AuthUsecase {
	return &authUsecase{
		userRepo:     userRepo,
		imageDeleter: imageDeleter,
		jwtSecret:    []byte(jwtSecret),
		jwtExpiry:    jwtExpiry,
		log:          log.WithField("component", "auth"),
	}
}

func (u *authUsecase) Signup(ctx context.Context, req *authdto.SignupRequest) (*authdto.AuthResponse, error) {
	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	if existing != nil {
		return nil, apperror.Conflict("User already exists")
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &authdomain.User{
		Name:            req.Name,
		Email:           req.Email,
		Password:        hashedPassword,
		Phone:           req.Phone,
		ProfileImageURL: req.ProfileImageURL,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent signup for the same email.
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, apperror.Conflict("User already exists")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return u.issue(user)
}

func (u *authUsecase) Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.AuthResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	if user == nil {
		return nil, apperror.NotFound("No User Exists!")
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperror.Unauthorized("Wrong Password!")
	}

	return u.issue(user)
}

func (u *authUsecase) UpdateProfile(ctx context.Context, userID string, req *authdto.UpdateProfileRequest) (*authdto.UpdateProfileResult, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	fields := map[string]interface{}{}
	if req.Phone != nil && *req.Phone != user.Phone {
		fields["phone"] = *req.Phone
	}
	imageChanged := req.ProfileImageURL != nil && *req.ProfileImageURL != user.ProfileImageURL
	if imageChanged {
		fields["profile_image_url"] = *req.ProfileImageURL
	}

	if len(fields) == 0 {
		return &authdto.UpdateProfileResult{User: user, Changed: false}, nil
	}

	if imageChanged && user.ProfileImageURL != "" {
		u.deleteOldImage(ctx, user.ProfileImageURL)
	}

	if err := u.userRepo.UpdateProfile(ctx, userID, fields); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.ProfileImageURL != nil {
		user.ProfileImageURL = *req.ProfileImageURL
	}
	return &authdto.UpdateProfileResult{User: user, Changed: true}, nil
}

func (u *authUsecase) deleteOldImage(ctx context.Context, imageURL string) {
	if u.imageDeleter == nil {
		return
	}
	if err := u.imageDeleter.DeleteImage(ctx, imageURL); err != nil {
		u.log.WithError(err).WithField("image_url", imageURL).Warn("failed to delete previous profile image")
	}
}

func (u *authUsecase) issue(user *authdomain.User) (*authdto.AuthResponse, error) {
	token, err := u.generateToken(user)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &authdto.AuthResponse{Token: token, User: user}, nil
}

func (u *authUsecase) generateToken(user *authdomain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"exp":   now.Add(u.jwtExpiry).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(u.jwtSecret)
}

func (u *authUsecase) ValidateToken(ctx context.Context, tokenString string) (*authdomain.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return u.jwtSecret, nil
	})

	if err != nil || !token.Valid {
		return nil, apperror.Unauthorized("Unauthorized: Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperror.Unauthorized("Unauthorized: Invalid token")
	}

	userID, ok := claims["id"].(string)
	if !ok || userID == "" {
		return nil, apperror.Unauthorized("Unauthorized: Invalid token")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user == nil {
		return nil, apperror.Unauthorized("Unauthorized: User does not exist")
	}

	return user, nil
}
