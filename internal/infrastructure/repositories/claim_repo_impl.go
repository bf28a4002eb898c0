package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"paylink.backend/internal/domain/entities"
	domainerrors "paylink.backend/internal/domain/errors"
	"paylink.backend/internal/infrastructure/models"
)

// ClaimRepository implements claim data operations
type ClaimRepository struct {
	db *gorm.DB
}

// NewClaimRepository creates a new claim repository
func NewClaimRepository(db *gorm.DB) *ClaimRepository {
	return &ClaimRepository{db: db}
}

// Create creates a new claim record
func (r *ClaimRepository) Create(ctx context.Context, claim *entities.Claim) error {
	m := &models.Claim{
		ID:           claim.ID,
		ClaimID:      claim.ClaimID,
		ClaimCode:    claim.ClaimCode,
		PayerAddress: claim.PayerAddress,
		Token:        claim.Token,
		Amount:       claim.Amount,
		Expiry:       claim.Expiry,
		Recipient:    claim.Recipient.Ptr(),
		SecretHash:   claim.SecretHash.Ptr(),
		Status:       string(claim.Status),
		TxHashCreate: claim.TxHashCreate,
		UserID:       claim.UserID,
		CreatedAt:    claim.CreatedAt,
		UpdatedAt:    claim.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	claim.ID = m.ID
	return nil
}

// GetByCode gets a claim by its shareable code
func (r *ClaimRepository) GetByCode(ctx context.Context, claimCode string) (*entities.Claim, error) {
	var m models.Claim
	if err := r.db.WithContext(ctx).Where("claim_code = ?", claimCode).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByUserID gets all claims created by a user, newest first
func (r *ClaimRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Claim, error) {
	var ms []models.Claim
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	var claims []*entities.Claim
	for _, m := range ms {
		model := m
		claims = append(claims, r.toEntity(&model))
	}
	return claims, nil
}

// ExistsByCode reports whether a claim code is already taken
func (r *ClaimRepository) ExistsByCode(ctx context.Context, claimCode string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Claim{}).
		Where("claim_code = ?", claimCode).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// MarkClaimed transitions CREATED -> CLAIMED, conditional on the current status
func (r *ClaimRepository) MarkClaimed(ctx context.Context, id uuid.UUID, txHash string) (*entities.Claim, error) {
	return r.transition(ctx, id, entities.ClaimStatusClaimed, "tx_hash_claim", txHash)
}

// MarkReclaimed transitions CREATED -> RECLAIMED, conditional on the current status
func (r *ClaimRepository) MarkReclaimed(ctx context.Context, id uuid.UUID, txHash string) (*entities.Claim, error) {
	return r.transition(ctx, id, entities.ClaimStatusReclaimed, "tx_hash_reclaim", txHash)
}

// transition is a compare-and-swap on status: two racing confirms cannot both win
func (r *ClaimRepository) transition(ctx context.Context, id uuid.UUID, to entities.ClaimStatus, hashColumn, txHash string) (*entities.Claim, error) {
	result := r.db.WithContext(ctx).Model(&models.Claim{}).
		Where("id = ? AND status = ?", id, string(entities.ClaimStatusCreated)).
		Updates(map[string]interface{}{
			"status":     string(to),
			hashColumn:   txHash,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		// Distinguish a lost race from a missing row
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Claim{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, domainerrors.ErrClaimFinalized
		}
		return nil, domainerrors.ErrUpdateFailed
	}

	var m models.Claim
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, domainerrors.ErrUpdateFailed
	}
	return r.toEntity(&m), nil
}

func (r *ClaimRepository) toEntity(m *models.Claim) *entities.Claim {
	return &entities.Claim{
		ID:            m.ID,
		ClaimID:       m.ClaimID,
		ClaimCode:     m.ClaimCode,
		PayerAddress:  m.PayerAddress,
		Token:         m.Token,
		Amount:        m.Amount,
		Expiry:        m.Expiry,
		Recipient:     null.StringFromPtr(m.Recipient),
		SecretHash:    null.StringFromPtr(m.SecretHash),
		Status:        entities.ClaimStatus(m.Status),
		TxHashCreate:  m.TxHashCreate,
		TxHashClaim:   null.StringFromPtr(m.TxHashClaim),
		TxHashReclaim: null.StringFromPtr(m.TxHashReclaim),
		UserID:        m.UserID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
