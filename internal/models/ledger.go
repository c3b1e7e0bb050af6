package models

import (
	"time"

	"gorm.io/gorm"
)

// LedgerEntry records credits and debits for an account owner. Positive amount
// is a credit (pickup reward or driver earning), negative is a debit (payout).
// Entries are append-only; an owner's balance is the sum of their amounts.
type LedgerEntry struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	OwnerID         uint           `gorm:"not null;index" json:"owner_id"`
	Type            string         `gorm:"size:20;not null;index" json:"type"` // REWARD, EARNING, PAYOUT
	Amount          int64          `gorm:"not null" json:"amount"`
	PickupID        *uint          `gorm:"index" json:"pickup_id,omitempty"`
	PayoutRequestID *uint          `gorm:"index" json:"payout_request_id,omitempty"`
	Description     string         `gorm:"size:255" json:"description"`
	CreatedAt       time.Time      `json:"created_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (LedgerEntry) TableName() string {
	return "ledger_entries"
}
