package models

import (
	"time"

	"gorm.io/gorm"
)

type SmsLog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Phone     string         `gorm:"size:20;not null;index" json:"phone"`
	Message   string         `gorm:"size:512;not null" json:"message"`
	Status    string         `gorm:"size:20;not null;index" json:"status"` // QUEUED, SENT, FAILED
	PickupID  *uint          `gorm:"index" json:"pickup_id,omitempty"`
	SentAt    *time.Time     `json:"sent_at"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (SmsLog) TableName() string {
	return "sms_logs"
}
