package entities

import (
	"time"

	"github.com/google/uuid"
)

// User represents a wallet-authenticated identity
type User struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	WalletAddress string    `json:"walletAddress"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NonceInput represents input for requesting a login nonce
type NonceInput struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
}

// NonceResponse carries the nonce the wallet must embed in its signed message
type NonceResponse struct {
	Nonce string `json:"nonce"`
}

// VerifyInput represents input for verifying a signed login message
type VerifyInput struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
	Message       string `json:"message" binding:"required"`
	Signature     string `json:"signature" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}
