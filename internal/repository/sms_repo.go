package repository

import (
	"bluecycle/internal/models"

	"gorm.io/gorm"
)

type SmsRepository struct {
	db *gorm.DB
}

func NewSmsRepository(db *gorm.DB) *SmsRepository {
	return &SmsRepository{db: db}
}

func (r *SmsRepository) Create(s *models.SmsLog) error {
	return r.db.Create(s).Error
}

func (r *SmsRepository) List(status string, limit, offset int) ([]models.SmsLog, int64, error) {
	q := r.db.Model(&models.SmsLog{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var total int64
	q.Count(&total)
	var list []models.SmsLog
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, total, err
}

func (r *SmsRepository) Update(s *models.SmsLog) error {
	return r.db.Save(s).Error
}
