package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"paylink.backend/internal/domain/entities"
	domainerrors "paylink.backend/internal/domain/errors"
	"paylink.backend/internal/interfaces/http/middleware"
	"paylink.backend/internal/interfaces/http/response"
)

type ClaimService interface {
	CreateClaim(ctx context.Context, userID uuid.UUID, input *entities.CreateClaimInput) (*entities.CreateClaimResponse, error)
	GetClaim(ctx context.Context, claimCode string) (*entities.ClaimProjection, error)
	ConfirmClaim(ctx context.Context, claimCode string, input *entities.ConfirmClaimInput) (*entities.ConfirmClaimResponse, error)
	ReclaimClaim(ctx context.Context, claimCode string, input *entities.ReclaimClaimInput) (*entities.ReclaimClaimResponse, error)
	ListUserClaims(ctx context.Context, userID uuid.UUID) ([]*entities.Claim, error)
}

// ClaimHandler handles claim endpoints
type ClaimHandler struct {
	claimUsecase ClaimService
}

// NewClaimHandler creates a new claim handler
func NewClaimHandler(claimUsecase ClaimService) *ClaimHandler {
	return &ClaimHandler{claimUsecase: claimUsecase}
}

// CreateClaim registers an on-chain claim and allocates a claim code
// POST /api/v1/claims
func (h *ClaimHandler) CreateClaim(c *gin.Context) {
	var input entities.CreateClaimInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	createResponse, err := h.claimUsecase.CreateClaim(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, createResponse)
}

// GetClaim gets the public projection of a claim by its code
// GET /api/v1/claims/:code
func (h *ClaimHandler) GetClaim(c *gin.Context) {
	code := c.Param("code")

	claim, err := h.claimUsecase.GetClaim(c.Request.Context(), code)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"claim": claim})
}

// ConfirmClaim records a successful on-chain claim
// POST /api/v1/claims/:code/claim
func (h *ClaimHandler) ConfirmClaim(c *gin.Context) {
	code := c.Param("code")

	var input entities.ConfirmClaimInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	confirmResponse, err := h.claimUsecase.ConfirmClaim(c.Request.Context(), code, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, confirmResponse)
}

// ReclaimClaim records a successful on-chain reclaim by the payer
// POST /api/v1/claims/:code/reclaim
func (h *ClaimHandler) ReclaimClaim(c *gin.Context) {
	code := c.Param("code")

	var input entities.ReclaimClaimInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	reclaimResponse, err := h.claimUsecase.ReclaimClaim(c.Request.Context(), code, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, reclaimResponse)
}

// ListClaims lists claims created by the current user
// GET /api/v1/claims
func (h *ClaimHandler) ListClaims(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	claims, err := h.claimUsecase.ListUserClaims(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"claims": claims})
}
