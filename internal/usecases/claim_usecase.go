package usecases

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"paylink.backend/internal/domain/entities"
	domainerrors "paylink.backend/internal/domain/errors"
	"paylink.backend/internal/domain/repositories"
	"paylink.backend/pkg/utils"
)

// ClaimUsecase drives the claim lifecycle: verified creation, masked reads,
// and the CREATED -> CLAIMED / RECLAIMED transitions
type ClaimUsecase struct {
	claimRepo repositories.ClaimRepository
	verifier  EventVerifier
}

// NewClaimUsecase creates a new claim usecase
func NewClaimUsecase(claimRepo repositories.ClaimRepository, verifier EventVerifier) *ClaimUsecase {
	return &ClaimUsecase{
		claimRepo: claimRepo,
		verifier:  verifier,
	}
}

// CreateClaim records a claim after verifying the creation transaction
// on-chain. Funds were already locked by the client's own transaction; this
// backend only attests, it never moves funds.
func (u *ClaimUsecase) CreateClaim(ctx context.Context, userID uuid.UUID, input *entities.CreateClaimInput) (*entities.CreateClaimResponse, error) {
	expiry, err := time.Parse(time.RFC3339, input.Expiry)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid expiry, expected RFC 3339 timestamp")
	}
	if _, ok := new(big.Int).SetString(input.Amount, 10); !ok {
		return nil, domainerrors.BadRequest("invalid amount, expected base-unit integer string")
	}

	expectedID := input.ClaimID
	event, err := u.verifier.Verify(ctx, input.TxHashCreate, EventClaimCreated, &expectedID)
	if err != nil {
		return nil, domainerrors.VerificationFailed("on-chain create tx verification failed", err)
	}
	if !strings.EqualFold(event.Create.Payer, input.PayerAddress) {
		return nil, domainerrors.VerificationFailed("on-chain create tx verification failed", domainerrors.ErrPayerMismatch)
	}

	claimCode, err := u.allocateClaimCode(ctx)
	if err != nil {
		if errors.Is(err, domainerrors.ErrCodeAllocationFailed) {
			return nil, domainerrors.InternalError(err)
		}
		return nil, err
	}

	now := time.Now()
	claim := &entities.Claim{
		ID:           utils.GenerateUUIDv7(),
		ClaimID:      int64(input.ClaimID),
		ClaimCode:    claimCode,
		PayerAddress: input.PayerAddress,
		Token:        input.Token,
		Amount:       input.Amount,
		Expiry:       expiry,
		Recipient:    null.StringFromPtr(input.Recipient),
		SecretHash:   null.StringFromPtr(input.SecretHash),
		Status:       entities.ClaimStatusCreated,
		TxHashCreate: input.TxHashCreate,
		UserID:       userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.claimRepo.Create(ctx, claim); err != nil {
		return nil, err
	}

	return &entities.CreateClaimResponse{
		Claim: claim,
		Link:  "/claim/" + claimCode,
	}, nil
}

// GetClaim returns the privacy-reduced projection for a claim code
func (u *ClaimUsecase) GetClaim(ctx context.Context, claimCode string) (*entities.ClaimProjection, error) {
	claim, err := u.claimRepo.GetByCode(ctx, claimCode)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Claim not found")
		}
		return nil, err
	}

	var recipientMasked null.String
	if claim.Recipient.Valid {
		recipientMasked = null.StringFrom(maskAddress(claim.Recipient.String))
	}

	return &entities.ClaimProjection{
		ClaimCode:       claim.ClaimCode,
		ClaimID:         claim.ClaimID,
		PayerAddress:    claim.PayerAddress,
		Token:           claim.Token,
		Amount:          claim.Amount,
		Expiry:          claim.Expiry,
		RecipientMasked: recipientMasked,
		RequiresSecret:  claim.SecretHash.Valid,
		Status:          claim.Status,
	}, nil
}

// ConfirmClaim verifies a claim transaction and transitions the claim to CLAIMED
func (u *ClaimUsecase) ConfirmClaim(ctx context.Context, claimCode string, input *entities.ConfirmClaimInput) (*entities.ConfirmClaimResponse, error) {
	claim, err := u.claimRepo.GetByCode(ctx, claimCode)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Claim not found")
		}
		return nil, err
	}

	expectedID := uint64(claim.ClaimID)
	if _, err := u.verifier.Verify(ctx, input.TxHashClaim, EventClaimed, &expectedID); err != nil {
		return nil, domainerrors.VerificationFailed("on-chain claim tx verification failed", err)
	}

	updated, err := u.claimRepo.MarkClaimed(ctx, claim.ID, input.TxHashClaim)
	if err != nil {
		return nil, mapTransitionError(err)
	}

	return &entities.ConfirmClaimResponse{
		ClaimCode:   updated.ClaimCode,
		Status:      updated.Status,
		TxHashClaim: updated.TxHashClaim.String,
		ClaimedAt:   updated.UpdatedAt,
	}, nil
}

// ReclaimClaim verifies a reclaim transaction and transitions the claim to
// RECLAIMED. Expiry enforcement lives on-chain; a successful Reclaimed event
// implies the contract accepted the reclaim.
func (u *ClaimUsecase) ReclaimClaim(ctx context.Context, claimCode string, input *entities.ReclaimClaimInput) (*entities.ReclaimClaimResponse, error) {
	claim, err := u.claimRepo.GetByCode(ctx, claimCode)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Claim not found")
		}
		return nil, err
	}

	expectedID := uint64(claim.ClaimID)
	if _, err := u.verifier.Verify(ctx, input.TxHashReclaim, EventReclaimed, &expectedID); err != nil {
		return nil, domainerrors.VerificationFailed("on-chain reclaim tx verification failed", err)
	}

	updated, err := u.claimRepo.MarkReclaimed(ctx, claim.ID, input.TxHashReclaim)
	if err != nil {
		return nil, mapTransitionError(err)
	}

	return &entities.ReclaimClaimResponse{
		ClaimCode:     updated.ClaimCode,
		Status:        updated.Status,
		TxHashReclaim: updated.TxHashReclaim.String,
		ReclaimedAt:   updated.UpdatedAt,
	}, nil
}

// ListUserClaims returns every claim created by the user, newest first
func (u *ClaimUsecase) ListUserClaims(ctx context.Context, userID uuid.UUID) ([]*entities.Claim, error) {
	return u.claimRepo.GetByUserID(ctx, userID)
}

func mapTransitionError(err error) error {
	switch {
	case errors.Is(err, domainerrors.ErrClaimFinalized):
		return domainerrors.Conflict("claim already claimed or reclaimed", err)
	case errors.Is(err, domainerrors.ErrUpdateFailed):
		return domainerrors.InternalError(err)
	}
	return err
}

// maskAddress shortens an address to its display form: first 6 + last 4
func maskAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}
