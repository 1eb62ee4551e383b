package handlers

import (
	"errors"
	"net/http"

	"newschat-backend/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// SignUp creates a demo account
// POST /api/v1/auth/signup
// Body: {"email": "...", "password": "...", "name": "..."}
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Name     string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	// Password is accepted for interface parity but not stored: demo auth.
	user, err := h.authService.SignUp(req.Email, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			respondConflict(c, err.Error())
			return
		}
		respondInternalError(c, "Failed to create account")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// SignIn resolves a demo account by email
// POST /api/v1/auth/signin
// Body: {"email": "...", "password": "..."}
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user, err := h.authService.SignIn(req.Email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondNotFound(c, err.Error())
			return
		}
		respondInternalError(c, "Failed to sign in")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
