package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Claim struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClaimID       int64     `gorm:"not null;index"`
	ClaimCode     string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	PayerAddress  string    `gorm:"type:varchar(255);not null"`
	Token         string    `gorm:"type:varchar(255);not null"`
	Amount        string    `gorm:"type:varchar(100);not null"` // BigInt base units
	Expiry        time.Time `gorm:"not null"`
	Recipient     *string   `gorm:"type:varchar(255)"`
	SecretHash    *string   `gorm:"type:varchar(255)"`
	Status        string    `gorm:"type:varchar(50);not null;index"`
	TxHashCreate  string    `gorm:"type:varchar(255);not null"`
	TxHashClaim   *string   `gorm:"type:varchar(255)"`
	TxHashReclaim *string   `gorm:"type:varchar(255)"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`

	User User `gorm:"foreignKey:UserID"`
}
