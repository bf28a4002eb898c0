package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"paylink.backend/internal/domain/entities"
	"paylink.backend/internal/usecases"
)

// Mock ClaimRepository
type MockClaimRepository struct {
	mock.Mock
}

func (m *MockClaimRepository) Create(ctx context.Context, claim *entities.Claim) error {
	args := m.Called(ctx, claim)
	return args.Error(0)
}

func (m *MockClaimRepository) GetByCode(ctx context.Context, claimCode string) (*entities.Claim, error) {
	args := m.Called(ctx, claimCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Claim), args.Error(1)
}

func (m *MockClaimRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Claim, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Claim), args.Error(1)
}

func (m *MockClaimRepository) ExistsByCode(ctx context.Context, claimCode string) (bool, error) {
	args := m.Called(ctx, claimCode)
	return args.Bool(0), args.Error(1)
}

func (m *MockClaimRepository) MarkClaimed(ctx context.Context, id uuid.UUID, txHash string) (*entities.Claim, error) {
	args := m.Called(ctx, id, txHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Claim), args.Error(1)
}

func (m *MockClaimRepository) MarkReclaimed(ctx context.Context, id uuid.UUID, txHash string) (*entities.Claim, error) {
	args := m.Called(ctx, id, txHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Claim), args.Error(1)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByWalletAddress(ctx context.Context, walletAddress string) (*entities.User, error) {
	args := m.Called(ctx, walletAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, walletAddress string) (*entities.User, error) {
	args := m.Called(ctx, walletAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

// Mock EventVerifier
type MockEventVerifier struct {
	mock.Mock
}

func (m *MockEventVerifier) Verify(ctx context.Context, txHash, eventName string, expectedClaimID *uint64) (*usecases.DecodedEvent, error) {
	args := m.Called(ctx, txHash, eventName, expectedClaimID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecases.DecodedEvent), args.Error(1)
}

// Mock NonceStore
type MockNonceStore struct {
	mock.Mock
}

func (m *MockNonceStore) Put(ctx context.Context, walletAddress, nonce string) error {
	args := m.Called(ctx, walletAddress, nonce)
	return args.Error(0)
}

func (m *MockNonceStore) Get(ctx context.Context, walletAddress string) (string, error) {
	args := m.Called(ctx, walletAddress)
	return args.String(0), args.Error(1)
}

func (m *MockNonceStore) Consume(ctx context.Context, walletAddress string) error {
	args := m.Called(ctx, walletAddress)
	return args.Error(0)
}
