package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"paylink.backend/internal/domain/entities"
	domainerrors "paylink.backend/internal/domain/errors"
)

func newClaim(userID uuid.UUID, code string) *entities.Claim {
	now := time.Now()
	return &entities.Claim{
		ID:           uuid.New(),
		ClaimID:      7,
		ClaimCode:    code,
		PayerAddress: "0x1111111111111111111111111111111111111111",
		Token:        "0x2222222222222222222222222222222222222222",
		Amount:       "1000000000000000000",
		Expiry:       now.Add(24 * time.Hour),
		Recipient:    null.StringFrom("0x4444444444444444444444444444444444444444"),
		SecretHash:   null.StringFrom("0xdeadbeef"),
		Status:       entities.ClaimStatusCreated,
		TxHashCreate: "0xcreate",
		UserID:       userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestClaimRepository_CreateAndGetByCode(t *testing.T) {
	db := newTestDB(t)
	createClaimTable(t, db)
	repo := NewClaimRepository(db)
	ctx := context.Background()

	c := newClaim(uuid.New(), "a1b2c3d4e5f6")
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.GetByCode(ctx, "a1b2c3d4e5f6")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
	assert.Equal(t, int64(7), got.ClaimID)
	assert.Equal(t, entities.ClaimStatusCreated, got.Status)
	assert.Equal(t, c.Recipient.String, got.Recipient.String)
	assert.Equal(t, c.SecretHash.String, got.SecretHash.String)
	assert.False(t, got.TxHashClaim.Valid)
	assert.False(t, got.TxHashReclaim.Valid)

	_, err = repo.GetByCode(ctx, "missing")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestClaimRepository_ExistsByCode(t *testing.T) {
	db := newTestDB(t)
	createClaimTable(t, db)
	repo := NewClaimRepository(db)
	ctx := context.Background()

	exists, err := repo.ExistsByCode(ctx, "a1b2c3d4e5f6")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, newClaim(uuid.New(), "a1b2c3d4e5f6")))

	exists, err = repo.ExistsByCode(ctx, "a1b2c3d4e5f6")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestClaimRepository_GetByUserIDOrdering(t *testing.T) {
	db := newTestDB(t)
	createClaimTable(t, db)
	repo := NewClaimRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	older := newClaim(userID, "aaaaaaaaaaaa")
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := newClaim(userID, "bbbbbbbbbbbb")
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, newClaim(uuid.New(), "cccccccccccc")))

	claims, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, claims, 2)
	assert.Equal(t, "bbbbbbbbbbbb", claims[0].ClaimCode)
	assert.Equal(t, "aaaaaaaaaaaa", claims[1].ClaimCode)
}

func TestClaimRepository_MarkClaimed(t *testing.T) {
	db := newTestDB(t)
	createClaimTable(t, db)
	repo := NewClaimRepository(db)
	ctx := context.Background()

	c := newClaim(uuid.New(), "a1b2c3d4e5f6")
	require.NoError(t, repo.Create(ctx, c))

	updated, err := repo.MarkClaimed(ctx, c.ID, "0xclaim")
	require.NoError(t, err)
	assert.Equal(t, entities.ClaimStatusClaimed, updated.Status)
	assert.Equal(t, "0xclaim", updated.TxHashClaim.String)
	assert.False(t, updated.TxHashReclaim.Valid)
}

func TestClaimRepository_MarkReclaimed(t *testing.T) {
	db := newTestDB(t)
	createClaimTable(t, db)
	repo := NewClaimRepository(db)
	ctx := context.Background()

	c := newClaim(uuid.New(), "a1b2c3d4e5f6")
	require.NoError(t, repo.Create(ctx, c))

	updated, err := repo.MarkReclaimed(ctx, c.ID, "0xreclaim")
	require.NoError(t, err)
	assert.Equal(t, entities.ClaimStatusReclaimed, updated.Status)
	assert.Equal(t, "0xreclaim", updated.TxHashReclaim.String)
}

func TestClaimRepository_TransitionIsOneShot(t *testing.T) {
	db := newTestDB(t)
	createClaimTable(t, db)
	repo := NewClaimRepository(db)
	ctx := context.Background()

	c := newClaim(uuid.New(), "a1b2c3d4e5f6")
	require.NoError(t, repo.Create(ctx, c))

	_, err := repo.MarkClaimed(ctx, c.ID, "0xclaim")
	require.NoError(t, err)

	// The losing side of the race sees a conflict, never a double transition
	_, err = repo.MarkClaimed(ctx, c.ID, "0xclaim2")
	require.ErrorIs(t, err, domainerrors.ErrClaimFinalized)

	_, err = repo.MarkReclaimed(ctx, c.ID, "0xreclaim")
	require.ErrorIs(t, err, domainerrors.ErrClaimFinalized)

	got, err := repo.GetByCode(ctx, c.ClaimCode)
	require.NoError(t, err)
	assert.Equal(t, entities.ClaimStatusClaimed, got.Status)
	assert.Equal(t, "0xclaim", got.TxHashClaim.String)
}

func TestClaimRepository_TransitionMissingClaim(t *testing.T) {
	db := newTestDB(t)
	createClaimTable(t, db)
	repo := NewClaimRepository(db)
	ctx := context.Background()

	_, err := repo.MarkClaimed(ctx, uuid.New(), "0xclaim")
	require.ErrorIs(t, err, domainerrors.ErrUpdateFailed)
}

func TestClaimRepository_DuplicateCodeRejected(t *testing.T) {
	db := newTestDB(t)
	createClaimTable(t, db)
	repo := NewClaimRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newClaim(uuid.New(), "a1b2c3d4e5f6")))
	require.Error(t, repo.Create(ctx, newClaim(uuid.New(), "a1b2c3d4e5f6")))
}
