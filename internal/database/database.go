package database

import (
	"log"

	"bluecycle/config"
	"bluecycle/internal/domain"
	"bluecycle/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Pickup{},
		&models.LedgerEntry{},
		&models.PayoutRequest{},
		&models.CollectionPoint{},
		&models.WasteCatalogItem{},
		&models.WasteDisposal{},
		&models.ComplianceReport{},
		&models.QrTracking{},
		&models.SmsLog{},
	)
}

// SeedAdmin creates the default admin account when no admin exists yet.
func SeedAdmin(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Where("role = ?", domain.RoleAdmin).Count(&count)
	if count > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("bluecycle-admin"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[Seed] admin hash: %v", err)
		return
	}
	admin := &models.User{
		Email:        "admin@bluecycle.local",
		Name:         "Administrator",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		log.Printf("[Seed] admin create: %v", err)
		return
	}
	log.Printf("[Seed] default admin created (%s) - change the password", admin.Email)
}
