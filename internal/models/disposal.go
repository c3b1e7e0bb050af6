package models

import (
	"time"

	"gorm.io/gorm"
)

// WasteDisposal records waste leaving a collection point for final processing.
type WasteDisposal struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	CollectionPointID uint           `gorm:"not null;index" json:"collection_point_id"`
	WasteType         string         `gorm:"size:64;not null" json:"waste_type"`
	QuantityKg        float64        `gorm:"not null" json:"quantity_kg"`
	DisposedAt        time.Time      `gorm:"not null" json:"disposed_at"`
	Notes             string         `gorm:"size:255" json:"notes"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	CollectionPoint CollectionPoint `gorm:"foreignKey:CollectionPointID" json:"-"`
}

func (WasteDisposal) TableName() string {
	return "waste_disposals"
}
