package repository

import (
	"bluecycle/internal/models"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) Create(item *models.WasteCatalogItem) error {
	return r.db.Create(item).Error
}

func (r *CatalogRepository) GetByID(id uint) (*models.WasteCatalogItem, error) {
	var item models.WasteCatalogItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CatalogRepository) List(category string, activeOnly bool, limit, offset int) ([]models.WasteCatalogItem, error) {
	q := r.db.Model(&models.WasteCatalogItem{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var list []models.WasteCatalogItem
	err := q.Order("category, name").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *CatalogRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.WasteCatalogItem{}).Where("id = ?", id).Updates(fields).Error
}

func (r *CatalogRepository) Delete(id uint) error {
	return r.db.Delete(&models.WasteCatalogItem{}, id).Error
}
