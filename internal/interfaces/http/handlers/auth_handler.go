package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"paylink.backend/internal/domain/entities"
	domainerrors "paylink.backend/internal/domain/errors"
	"paylink.backend/internal/interfaces/http/response"
)

type AuthService interface {
	Nonce(ctx context.Context, input *entities.NonceInput) (*entities.NonceResponse, error)
	Verify(ctx context.Context, input *entities.VerifyInput) (*entities.AuthResponse, error)
}

// AuthHandler handles wallet authentication endpoints
type AuthHandler struct {
	authUsecase AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase AuthService) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Nonce issues a fresh sign-in nonce for a wallet address
// POST /api/v1/auth/siwe/nonce
func (h *AuthHandler) Nonce(c *gin.Context) {
	var input entities.NonceInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	nonceResponse, err := h.authUsecase.Nonce(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, nonceResponse)
}

// Verify checks a signed sign-in message and returns a token pair
// POST /api/v1/auth/siwe/verify
func (h *AuthHandler) Verify(c *gin.Context) {
	var input entities.VerifyInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	authResponse, err := h.authUsecase.Verify(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, authResponse)
}
