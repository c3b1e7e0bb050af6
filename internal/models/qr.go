package models

import (
	"time"

	"gorm.io/gorm"
)

// QrTracking ties a scannable code to a pickup so drivers can confirm
// hand-over at a collection point.
type QrTracking struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Code        string         `gorm:"size:64;uniqueIndex;not null" json:"code"`
	PickupID    uint           `gorm:"not null;index" json:"pickup_id"`
	ScannedAt   *time.Time     `json:"scanned_at"`
	ScannedByID *uint          `json:"scanned_by_id"`
	Location    string         `gorm:"size:255" json:"location"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Pickup Pickup `gorm:"foreignKey:PickupID" json:"-"`
}

func (QrTracking) TableName() string {
	return "qr_trackings"
}
