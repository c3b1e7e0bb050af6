package models

import (
	"time"

	"gorm.io/gorm"
)

// WasteCatalogItem is a priced waste category (e.g. PET bottles per kg).
type WasteCatalogItem struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"size:128;not null;uniqueIndex" json:"name"`
	Category     string         `gorm:"size:64;not null;index" json:"category"`
	Unit         string         `gorm:"size:20;not null" json:"unit"` // kg, item, litre
	PricePerUnit int64          `gorm:"not null" json:"price_per_unit"`
	Active       bool           `gorm:"default:true" json:"active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (WasteCatalogItem) TableName() string {
	return "waste_catalog_items"
}
