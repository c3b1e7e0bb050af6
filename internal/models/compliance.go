package models

import (
	"time"

	"gorm.io/gorm"
)

// ComplianceReport aggregates collected vs disposed volumes for a period
// (e.g. "2026-08") for regulatory filing.
type ComplianceReport struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Period           string         `gorm:"size:20;not null;uniqueIndex" json:"period"`
	TotalCollectedKg float64        `json:"total_collected_kg"`
	TotalDisposedKg  float64        `json:"total_disposed_kg"`
	GeneratedByID    uint           `gorm:"not null" json:"generated_by_id"`
	Notes            string         `gorm:"size:512" json:"notes"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	GeneratedBy User `gorm:"foreignKey:GeneratedByID" json:"-"`
}

func (ComplianceReport) TableName() string {
	return "compliance_reports"
}
