package models

import (
	"time"

	"gorm.io/gorm"
)

// Pickup is a single waste-collection order. DriverEarnings and AdminCommission
// are derived from Price once at creation (80/20 floor split) and are kept as
// written even if the price is edited later.
type Pickup struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	Address            string         `gorm:"size:512;not null" json:"address"`
	WasteType          string         `gorm:"size:64;not null" json:"waste_type"`
	QuantityKg         float64        `gorm:"not null" json:"quantity_kg"`
	DeliveryMethod     string         `gorm:"size:20;not null" json:"delivery_method"` // PICKUP | DROPOFF
	Status             string         `gorm:"size:20;not null;index" json:"status"`
	Price              int64          `gorm:"not null" json:"price"`
	DriverEarnings     int64          `gorm:"not null" json:"driver_earnings"`
	AdminCommission    int64          `gorm:"not null" json:"admin_commission"`
	RequestedByID      uint           `gorm:"not null;index" json:"requested_by_id"`
	AssignedDriverID   *uint          `gorm:"index" json:"assigned_driver_id"`
	CollectionPointID  *uint          `gorm:"index" json:"collection_point_id"`
	CancellationReason string         `gorm:"size:255" json:"cancellation_reason,omitempty"`
	CompletedAt        *time.Time     `json:"completed_at"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`

	RequestedBy    User             `gorm:"foreignKey:RequestedByID" json:"-"`
	AssignedDriver *User            `gorm:"foreignKey:AssignedDriverID" json:"-"`
	CollectionPoint *CollectionPoint `gorm:"foreignKey:CollectionPointID" json:"-"`
}

func (Pickup) TableName() string {
	return "pickups"
}
