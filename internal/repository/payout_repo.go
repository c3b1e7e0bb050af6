package repository

import (
	"bluecycle/internal/domain"
	"bluecycle/internal/models"

	"gorm.io/gorm"
)

type PayoutRepository struct {
	db *gorm.DB
}

func NewPayoutRepository(db *gorm.DB) *PayoutRepository {
	return &PayoutRepository{db: db}
}

func (r *PayoutRepository) Create(p *models.PayoutRequest) error {
	return r.db.Create(p).Error
}

func (r *PayoutRepository) GetByID(id uint) (*models.PayoutRequest, error) {
	var p models.PayoutRequest
	err := r.db.First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PayoutRepository) ListByOwner(ownerID uint, limit, offset int) ([]models.PayoutRequest, error) {
	var list []models.PayoutRequest
	err := r.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *PayoutRepository) List(ownerRole, status string, limit, offset int) ([]models.PayoutRequest, error) {
	q := r.db.Model(&models.PayoutRequest{})
	if ownerRole != "" {
		q = q.Where("owner_role = ?", ownerRole)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var list []models.PayoutRequest
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

// SumPending is the total amount an owner has locked in pending requests.
// Approved and completed payouts already carry a negative ledger entry, so
// only pending ones reduce the available balance on top of the ledger sum.
func (r *PayoutRepository) SumPending(ownerID uint) (int64, error) {
	var out struct{ Total int64 }
	err := r.db.Model(&models.PayoutRequest{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("owner_id = ? AND status = ?", ownerID, domain.PayoutPending).
		Scan(&out).Error
	return out.Total, err
}

func (r *PayoutRepository) Update(p *models.PayoutRequest) error {
	return r.db.Save(p).Error
}
