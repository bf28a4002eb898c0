package repositories

import (
	"context"

	"github.com/google/uuid"
	"paylink.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByWalletAddress(ctx context.Context, walletAddress string) (*entities.User, error)
	// Upsert returns the existing user for the wallet or creates a new one
	Upsert(ctx context.Context, walletAddress string) (*entities.User, error)
}
