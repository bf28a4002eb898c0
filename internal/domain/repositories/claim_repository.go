package repositories

import (
	"context"

	"github.com/google/uuid"
	"paylink.backend/internal/domain/entities"
)

// ClaimRepository defines claim data operations
type ClaimRepository interface {
	Create(ctx context.Context, claim *entities.Claim) error
	GetByCode(ctx context.Context, claimCode string) (*entities.Claim, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Claim, error)
	ExistsByCode(ctx context.Context, claimCode string) (bool, error)
	// MarkClaimed transitions CREATED -> CLAIMED, conditional on the current
	// status still being CREATED, and returns the updated claim
	MarkClaimed(ctx context.Context, id uuid.UUID, txHash string) (*entities.Claim, error)
	// MarkReclaimed transitions CREATED -> RECLAIMED under the same condition
	MarkReclaimed(ctx context.Context, id uuid.UUID, txHash string) (*entities.Claim, error)
}
