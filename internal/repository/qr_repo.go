package repository

import (
	"bluecycle/internal/models"

	"gorm.io/gorm"
)

type QrRepository struct {
	db *gorm.DB
}

func NewQrRepository(db *gorm.DB) *QrRepository {
	return &QrRepository{db: db}
}

func (r *QrRepository) Create(q *models.QrTracking) error {
	return r.db.Create(q).Error
}

func (r *QrRepository) GetByCode(code string) (*models.QrTracking, error) {
	var q models.QrTracking
	err := r.db.Where("code = ?", code).First(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QrRepository) GetByPickupID(pickupID uint) (*models.QrTracking, error) {
	var q models.QrTracking
	err := r.db.Where("pickup_id = ?", pickupID).First(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QrRepository) Update(q *models.QrTracking) error {
	return r.db.Save(q).Error
}
