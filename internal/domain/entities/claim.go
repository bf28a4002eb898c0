package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ClaimStatus represents the lifecycle state of a claim
type ClaimStatus string

const (
	ClaimStatusCreated   ClaimStatus = "CREATED"
	ClaimStatusClaimed   ClaimStatus = "CLAIMED"
	ClaimStatusReclaimed ClaimStatus = "RECLAIMED"
)

// ClaimCodeLength is the number of hex characters in a shareable claim code
const ClaimCodeLength = 12

// Claim represents escrowed funds locked in the paylink contract.
// Terminal states are CLAIMED and RECLAIMED; claims are never deleted.
type Claim struct {
	ID            uuid.UUID   `json:"id" gorm:"type:uuid;primary_key"`
	ClaimID       int64       `json:"claimId"`
	ClaimCode     string      `json:"claimCode"`
	PayerAddress  string      `json:"payerAddress"`
	Token         string      `json:"token"`
	Amount        string      `json:"amount" gorm:"type:decimal(36,18)"`
	Expiry        time.Time   `json:"expiry"`
	Recipient     null.String `json:"recipient,omitempty"`
	SecretHash    null.String `json:"secretHash,omitempty"`
	Status        ClaimStatus `json:"status"`
	TxHashCreate  string      `json:"txHashCreate"`
	TxHashClaim   null.String `json:"txHashClaim,omitempty"`
	TxHashReclaim null.String `json:"txHashReclaim,omitempty"`
	UserID        uuid.UUID   `json:"userId"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
	DeletedAt     *time.Time  `json:"-"`
}

// CreateClaimInput represents input for recording a created claim
type CreateClaimInput struct {
	ClaimID      uint64  `json:"claimId" binding:"required"`
	PayerAddress string  `json:"payerAddress" binding:"required"`
	Token        string  `json:"token" binding:"required"`
	Amount       string  `json:"amount" binding:"required"`
	Expiry       string  `json:"expiry" binding:"required"` // RFC 3339
	Recipient    *string `json:"recipient,omitempty"`
	SecretHash   *string `json:"secretHash,omitempty"`
	TxHashCreate string  `json:"txHashCreate" binding:"required"`
}

// CreateClaimResponse represents response for claim creation
type CreateClaimResponse struct {
	Claim *Claim `json:"claim"`
	Link  string `json:"link"`
}

// ClaimProjection is the privacy-reduced read view of a claim.
// The full recipient address and the raw secret hash are never exposed.
type ClaimProjection struct {
	ClaimCode       string      `json:"claimCode"`
	ClaimID         int64       `json:"claimId"`
	PayerAddress    string      `json:"payerAddress"`
	Token           string      `json:"token"`
	Amount          string      `json:"amount"`
	Expiry          time.Time   `json:"expiry"`
	RecipientMasked null.String `json:"recipientMasked"`
	RequiresSecret  bool        `json:"requiresSecret"`
	Status          ClaimStatus `json:"status"`
}

// ConfirmClaimInput represents input for confirming a claim transaction
type ConfirmClaimInput struct {
	TxHashClaim string `json:"txHashClaim" binding:"required"`
}

// ConfirmClaimResponse represents response after a CREATED -> CLAIMED transition
type ConfirmClaimResponse struct {
	ClaimCode   string      `json:"claimCode"`
	Status      ClaimStatus `json:"status"`
	TxHashClaim string      `json:"txHashClaim"`
	ClaimedAt   time.Time   `json:"claimedAt"`
}

// ReclaimClaimInput represents input for confirming a reclaim transaction
type ReclaimClaimInput struct {
	TxHashReclaim string `json:"txHashReclaim" binding:"required"`
}

// ReclaimClaimResponse represents response after a CREATED -> RECLAIMED transition
type ReclaimClaimResponse struct {
	ClaimCode     string      `json:"claimCode"`
	Status        ClaimStatus `json:"status"`
	TxHashReclaim string      `json:"txHashReclaim"`
	ReclaimedAt   time.Time   `json:"reclaimedAt"`
}
