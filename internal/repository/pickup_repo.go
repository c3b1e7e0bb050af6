package repository

import (
	"bluecycle/internal/domain"
	"bluecycle/internal/models"

	"gorm.io/gorm"
)

type PickupRepository struct {
	db *gorm.DB
}

func NewPickupRepository(db *gorm.DB) *PickupRepository {
	return &PickupRepository{db: db}
}

func (r *PickupRepository) Create(p *models.Pickup) error {
	return r.db.Create(p).Error
}

func (r *PickupRepository) GetByID(id uint) (*models.Pickup, error) {
	var p models.Pickup
	err := r.db.First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByRequester returns a customer's own pickups, newest first.
func (r *PickupRepository) ListByRequester(userID uint, limit, offset int) ([]models.Pickup, error) {
	var list []models.Pickup
	err := r.db.Where("requested_by_id = ?", userID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

// ListForDriver returns pickups assigned to the driver plus unassigned
// accepted orders the driver could take.
func (r *PickupRepository) ListForDriver(driverID uint, limit, offset int) ([]models.Pickup, error) {
	var list []models.Pickup
	err := r.db.Where("assigned_driver_id = ? OR (status = ? AND assigned_driver_id IS NULL)",
		driverID, domain.PickupAccepted).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *PickupRepository) ListAll(status string, limit, offset int) ([]models.Pickup, error) {
	q := r.db.Model(&models.Pickup{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var list []models.Pickup
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *PickupRepository) Update(p *models.Pickup) error {
	return r.db.Save(p).Error
}

func (r *PickupRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Pickup{}).Where("id = ?", id).Updates(fields).Error
}
