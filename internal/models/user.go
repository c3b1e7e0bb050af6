package models

import (
	"time"

	"bluecycle/internal/domain"

	"gorm.io/gorm"
)

type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Email        string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name         string         `gorm:"size:128;not null" json:"name"`
	PasswordHash string         `gorm:"size:255" json:"-"`
	Role         string         `gorm:"size:20;not null;index" json:"role"` // ADMIN | USER | DRIVER
	Phone        string         `gorm:"size:20" json:"phone"`
	BankName     string         `gorm:"size:64" json:"bank_name"`
	BankAccount  string         `gorm:"size:64" json:"bank_account"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) IsAdmin() bool  { return u.Role == domain.RoleAdmin }
func (u *User) IsDriver() bool { return u.Role == domain.RoleDriver }
