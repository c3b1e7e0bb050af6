package repository

import (
	"bluecycle/internal/models"

	"gorm.io/gorm"
)

type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) Create(e *models.LedgerEntry) error {
	return r.db.Create(e).Error
}

// Balance is the sum of all signed amounts for an owner.
func (r *LedgerRepository) Balance(ownerID uint) (int64, error) {
	var out struct{ Total int64 }
	err := r.db.Model(&models.LedgerEntry{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("owner_id = ?", ownerID).Scan(&out).Error
	return out.Total, err
}

func (r *LedgerRepository) ListByOwner(ownerID uint, limit, offset int) ([]models.LedgerEntry, error) {
	var list []models.LedgerEntry
	err := r.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

// CountByPickupAndType guards against duplicate settlement rows in tests and
// repair tooling; normal writes are protected by the settlement transaction.
func (r *LedgerRepository) CountByPickupAndType(pickupID uint, entryType string) (int64, error) {
	var n int64
	err := r.db.Model(&models.LedgerEntry{}).
		Where("pickup_id = ? AND type = ?", pickupID, entryType).Count(&n).Error
	return n, err
}
