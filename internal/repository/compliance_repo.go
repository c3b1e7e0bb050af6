package repository

import (
	"time"

	"bluecycle/internal/domain"
	"bluecycle/internal/models"

	"gorm.io/gorm"
)

type ComplianceRepository struct {
	db *gorm.DB
}

func NewComplianceRepository(db *gorm.DB) *ComplianceRepository {
	return &ComplianceRepository{db: db}
}

func (r *ComplianceRepository) Create(c *models.ComplianceReport) error {
	return r.db.Create(c).Error
}

func (r *ComplianceRepository) GetByID(id uint) (*models.ComplianceReport, error) {
	var c models.ComplianceReport
	err := r.db.First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ComplianceRepository) GetByPeriod(period string) (*models.ComplianceReport, error) {
	var c models.ComplianceReport
	err := r.db.Where("period = ?", period).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ComplianceRepository) List(limit, offset int) ([]models.ComplianceReport, error) {
	var list []models.ComplianceReport
	err := r.db.Order("period DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

// SumCollectedBetween totals completed pickup quantities in [from, to).
func (r *ComplianceRepository) SumCollectedBetween(from, to time.Time) (float64, error) {
	var out struct{ Total float64 }
	err := r.db.Model(&models.Pickup{}).
		Select("COALESCE(SUM(quantity_kg), 0) as total").
		Where("status = ? AND completed_at >= ? AND completed_at < ?", domain.PickupCompleted, from, to).
		Scan(&out).Error
	return out.Total, err
}

func (r *ComplianceRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.ComplianceReport{}).Where("id = ?", id).Updates(fields).Error
}

func (r *ComplianceRepository) Delete(id uint) error {
	return r.db.Delete(&models.ComplianceReport{}, id).Error
}
