package service

import (
	"fmt"
	"testing"

	"bluecycle/internal/database"
	"bluecycle/internal/domain"
	"bluecycle/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens an isolated in-memory database. The pool is pinned to one
// connection so every query sees the same sqlite memory instance.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()
	u := &models.User{
		Email: fmt.Sprintf("%s-%d@test.local", role, seedSeq()),
		Name:  "Test " + role,
		Role:  role,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

var seq int

func seedSeq() int {
	seq++
	return seq
}

func seedPickup(t *testing.T, db *gorm.DB, svc *PickupService, requesterID uint, price int64) *models.Pickup {
	t.Helper()
	p := &models.Pickup{
		Address:        "Jl. Sudirman 1",
		WasteType:      "plastic",
		QuantityKg:     5,
		DeliveryMethod: domain.DeliveryPickup,
		Price:          price,
		RequestedByID:  requesterID,
	}
	if err := svc.Create(p); err != nil {
		t.Fatalf("create pickup: %v", err)
	}
	return p
}

func countLedger(t *testing.T, db *gorm.DB, ownerID uint, typ string) int64 {
	t.Helper()
	var n int64
	q := db.Model(&models.LedgerEntry{}).Where("owner_id = ?", ownerID)
	if typ != "" {
		q = q.Where("type = ?", typ)
	}
	if err := q.Count(&n).Error; err != nil {
		t.Fatalf("count ledger: %v", err)
	}
	return n
}
