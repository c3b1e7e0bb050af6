package repository

import (
	"bluecycle/internal/models"

	"gorm.io/gorm"
)

type CollectionPointRepository struct {
	db *gorm.DB
}

func NewCollectionPointRepository(db *gorm.DB) *CollectionPointRepository {
	return &CollectionPointRepository{db: db}
}

func (r *CollectionPointRepository) Create(cp *models.CollectionPoint) error {
	return r.db.Create(cp).Error
}

func (r *CollectionPointRepository) GetByID(id uint) (*models.CollectionPoint, error) {
	var cp models.CollectionPoint
	err := r.db.First(&cp, id).Error
	if err != nil {
		return nil, err
	}
	return &cp, nil
}

func (r *CollectionPointRepository) List(city string, activeOnly bool, limit, offset int) ([]models.CollectionPoint, error) {
	q := r.db.Model(&models.CollectionPoint{})
	if city != "" {
		q = q.Where("city = ?", city)
	}
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var list []models.CollectionPoint
	err := q.Order("name").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *CollectionPointRepository) ListActive() ([]models.CollectionPoint, error) {
	var list []models.CollectionPoint
	err := r.db.Where("active = ?", true).Find(&list).Error
	return list, err
}

func (r *CollectionPointRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.CollectionPoint{}).Where("id = ?", id).Updates(fields).Error
}

func (r *CollectionPointRepository) Delete(id uint) error {
	return r.db.Delete(&models.CollectionPoint{}, id).Error
}
