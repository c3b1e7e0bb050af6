package models

import (
	"time"

	"gorm.io/gorm"
)

type CollectionPoint struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"size:128;not null" json:"name"`
	Address    string         `gorm:"size:512;not null" json:"address"`
	City       string         `gorm:"size:64" json:"city"`
	Latitude   float64        `json:"latitude"`
	Longitude  float64        `json:"longitude"`
	CapacityKg float64        `json:"capacity_kg"`
	Active     bool           `gorm:"default:true" json:"active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (CollectionPoint) TableName() string {
	return "collection_points"
}
