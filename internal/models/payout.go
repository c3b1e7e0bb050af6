package models

import (
	"time"

	"gorm.io/gorm"
)

// PayoutRequest is an earner's request to convert ledger balance into a bank
// transfer. Approval writes the debiting ledger entry and stores its id here,
// so payout and debit are linked by key rather than matched by amount.
type PayoutRequest struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	OwnerID         uint           `gorm:"not null;index" json:"owner_id"`
	OwnerRole       string         `gorm:"size:20;not null;index" json:"owner_role"` // USER | DRIVER
	Amount          int64          `gorm:"not null" json:"amount"`
	Status          string         `gorm:"size:20;not null;index" json:"status"` // PENDING, APPROVED, REJECTED, COMPLETED
	Reference       string         `gorm:"size:64;uniqueIndex;not null" json:"reference"`
	BankName        string         `gorm:"size:64;not null" json:"bank_name"`
	BankAccount     string         `gorm:"size:64;not null" json:"bank_account"`
	AdminNotes      string         `gorm:"size:255" json:"admin_notes,omitempty"`
	RejectionReason string         `gorm:"size:255" json:"rejection_reason,omitempty"`
	LedgerEntryID   *uint          `gorm:"index" json:"ledger_entry_id,omitempty"`
	ExternalRef     string         `gorm:"size:64" json:"external_ref,omitempty"`
	ApprovedAt      *time.Time     `json:"approved_at"`
	CompletedAt     *time.Time     `json:"completed_at"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (PayoutRequest) TableName() string {
	return "payout_requests"
}
