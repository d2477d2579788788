package delivery

import (
	"net/http"

	authdto "findit-backend/internal/auth/dto"
	"findit-backend/internal/auth/usecase"
	"findit-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AuthHandler handles signup, login and profile requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	log         logrus.FieldLogger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase, log logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		log:         log,
	}
}

// Signup registers a new account
// POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req authdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.authUsecase.Signup(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Signed up successfully!",
		"token":   resp.Token,
		"user":    resp.User,
	})
}

// Login exchanges credentials for a token
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   resp.Token,
		"user":    resp.User,
	})
}

// UpdateProfile changes the caller's phone and/or profile image
// PUT /auth/updateProfile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req authdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.authUsecase.UpdateProfile(c.Request.Context(), c.GetString("userID"), &req)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	message := "Profile updated successfully"
	if !result.Changed {
		message = "No changes detected. Profile remains the same."
	}
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"user":    result.User,
	})
}
