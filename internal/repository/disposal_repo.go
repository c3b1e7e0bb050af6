package repository

import (
	"time"

	"bluecycle/internal/models"

	"gorm.io/gorm"
)

type DisposalRepository struct {
	db *gorm.DB
}

func NewDisposalRepository(db *gorm.DB) *DisposalRepository {
	return &DisposalRepository{db: db}
}

func (r *DisposalRepository) Create(d *models.WasteDisposal) error {
	return r.db.Create(d).Error
}

func (r *DisposalRepository) GetByID(id uint) (*models.WasteDisposal, error) {
	var d models.WasteDisposal
	err := r.db.First(&d, id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DisposalRepository) List(collectionPointID uint, limit, offset int) ([]models.WasteDisposal, error) {
	q := r.db.Model(&models.WasteDisposal{})
	if collectionPointID != 0 {
		q = q.Where("collection_point_id = ?", collectionPointID)
	}
	var list []models.WasteDisposal
	err := q.Order("disposed_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

// SumDisposedBetween totals disposed kilograms in [from, to) for compliance reports.
func (r *DisposalRepository) SumDisposedBetween(from, to time.Time) (float64, error) {
	var out struct{ Total float64 }
	err := r.db.Model(&models.WasteDisposal{}).
		Select("COALESCE(SUM(quantity_kg), 0) as total").
		Where("disposed_at >= ? AND disposed_at < ?", from, to).
		Scan(&out).Error
	return out.Total, err
}

func (r *DisposalRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.WasteDisposal{}).Where("id = ?", id).Updates(fields).Error
}

func (r *DisposalRepository) Delete(id uint) error {
	return r.db.Delete(&models.WasteDisposal{}, id).Error
}
