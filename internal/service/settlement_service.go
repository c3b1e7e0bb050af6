package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"bluecycle/internal/domain"
	"bluecycle/internal/models"

	"gorm.io/gorm"
)

// Commission split applied to every pickup price. Integer floor division may
// leave a 0-1 unit remainder that is retained by neither party; that matches
// the agreed pricing rules and is asserted in tests.
const (
	driverSharePct = 80
	adminSharePct  = 20
)

// SplitPrice returns the driver and admin shares of a pickup price.
func SplitPrice(price int64) (driverEarnings, adminCommission int64) {
	return price * driverSharePct / 100, price * adminSharePct / 100
}

// PickupService owns the pickup lifecycle and the settlement it triggers.
// Every status change is a conditional UPDATE on the previous status, so two
// concurrent transitions cannot both win; the loser gets a ConflictError.
type PickupService struct {
	db *gorm.DB
}

func NewPickupService(db *gorm.DB) *PickupService {
	return &PickupService{db: db}
}

// PickupUpdate is a partial update; nil fields are left untouched.
type PickupUpdate struct {
	Address            *string
	WasteType          *string
	QuantityKg         *float64
	DeliveryMethod     *string
	Price              *int64
	CollectionPointID  *uint
	Status             *string
	AssignedDriverID   *uint
	CancellationReason *string
}

func (s *PickupService) Create(p *models.Pickup) error {
	if p.Price < 0 {
		return domain.Validationf("price must be non-negative")
	}
	p.Status = domain.PickupPending
	p.DriverEarnings, p.AdminCommission = SplitPrice(p.Price)
	return s.db.Create(p).Error
}

func (s *PickupService) Get(id uint) (*models.Pickup, error) {
	var p models.Pickup
	if err := s.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Update applies a partial update. Non-status fields are written first; a
// status field then drives the transition table. The stored 80/20 split is
// NOT recomputed when the price changes (deliberate, see pricing rules).
func (s *PickupService) Update(id uint, upd PickupUpdate, actorID uint, actorRole string) (*models.Pickup, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !canTouchPickup(p, actorID, actorRole) {
		return nil, gorm.ErrRecordNotFound
	}

	fields := map[string]interface{}{}
	if upd.Address != nil {
		fields["address"] = *upd.Address
	}
	if upd.WasteType != nil {
		fields["waste_type"] = *upd.WasteType
	}
	if upd.QuantityKg != nil {
		fields["quantity_kg"] = *upd.QuantityKg
	}
	if upd.DeliveryMethod != nil {
		if *upd.DeliveryMethod != domain.DeliveryPickup && *upd.DeliveryMethod != domain.DeliveryDropoff {
			return nil, domain.Validationf("unknown delivery method %q", *upd.DeliveryMethod)
		}
		fields["delivery_method"] = *upd.DeliveryMethod
	}
	if upd.CollectionPointID != nil {
		fields["collection_point_id"] = *upd.CollectionPointID
	}
	if upd.Price != nil {
		if *upd.Price < 0 {
			return nil, domain.Validationf("price must be non-negative")
		}
		if *upd.Price != p.Price {
			log.Printf("[Settlement] pickup %d price edited %d -> %d; stored split kept as written", p.ID, p.Price, *upd.Price)
		}
		fields["price"] = *upd.Price
	}

	if upd.Status == nil || *upd.Status == p.Status {
		if len(fields) > 0 {
			if err := s.db.Model(&models.Pickup{}).Where("id = ?", p.ID).Updates(fields).Error; err != nil {
				return nil, err
			}
		}
		return s.Get(id)
	}

	to := *upd.Status
	if !domain.ValidPickupStatus(to) {
		return nil, domain.Validationf("unknown status %q", to)
	}
	if !domain.CanTransition(p.Status, to) {
		return nil, domain.Conflictf("cannot transition pickup from %s to %s", p.Status, to)
	}

	switch to {
	case domain.PickupInProgress:
		// The driver takes the order: assignment must land with the transition.
		driverID := upd.AssignedDriverID
		if driverID == nil && actorRole == domain.RoleDriver {
			driverID = &actorID
		}
		if driverID == nil && p.AssignedDriverID == nil {
			return nil, domain.Validationf("in-progress requires an assigned driver")
		}
		if driverID != nil {
			fields["assigned_driver_id"] = *driverID
		}
		err = s.transition(p, to, fields)
	case domain.PickupCancelled:
		if upd.CancellationReason != nil {
			fields["cancellation_reason"] = *upd.CancellationReason
		}
		err = s.transition(p, to, fields)
	case domain.PickupCompleted:
		err = s.settle(p, fields)
	default:
		err = s.transition(p, to, fields)
	}
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Take assigns the pickup to the driver and moves it to IN_PROGRESS in one step.
func (s *PickupService) Take(id, driverID uint) (*models.Pickup, error) {
	driver := driverID
	return s.Update(id, PickupUpdate{
		Status:           strPtr(domain.PickupInProgress),
		AssignedDriverID: &driver,
	}, driverID, domain.RoleDriver)
}

// transition performs a guarded status write: it only lands if the row still
// holds the status the caller saw.
func (s *PickupService) transition(p *models.Pickup, to string, fields map[string]interface{}) error {
	fields["status"] = to
	res := s.db.Model(&models.Pickup{}).
		Where("id = ? AND status = ?", p.ID, p.Status).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Conflictf("pickup %d is no longer %s", p.ID, p.Status)
	}
	return nil
}

// settle moves the pickup to COMPLETED and writes both settlement credits in
// one transaction. The guarded UPDATE makes the whole sequence fire at most
// once per pickup: a second completion attempt affects zero rows and the
// ledger writes never run.
func (s *PickupService) settle(p *models.Pickup, fields map[string]interface{}) error {
	if p.AssignedDriverID == nil {
		return domain.Conflictf("pickup %d has no assigned driver", p.ID)
	}
	driverID := *p.AssignedDriverID
	now := time.Now()
	return s.db.Transaction(func(tx *gorm.DB) error {
		fields["status"] = domain.PickupCompleted
		fields["completed_at"] = now
		res := tx.Model(&models.Pickup{}).
			Where("id = ? AND status = ?", p.ID, domain.PickupInProgress).
			Updates(fields)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.Conflictf("pickup %d already settled or not in progress", p.ID)
		}
		reward := &models.LedgerEntry{
			OwnerID:     p.RequestedByID,
			Type:        domain.LedgerReward,
			Amount:      p.Price,
			PickupID:    &p.ID,
			Description: fmt.Sprintf("Reward for pickup #%d", p.ID),
		}
		if err := tx.Create(reward).Error; err != nil {
			return err
		}
		earning := &models.LedgerEntry{
			OwnerID:     driverID,
			Type:        domain.LedgerEarning,
			Amount:      p.DriverEarnings,
			PickupID:    &p.ID,
			Description: fmt.Sprintf("Earnings for pickup #%d", p.ID),
		}
		return tx.Create(earning).Error
	})
}

// canTouchPickup hides other people's pickups: admins see everything, the
// requester sees their own, a driver sees assigned or still-takeable orders.
func canTouchPickup(p *models.Pickup, actorID uint, actorRole string) bool {
	switch actorRole {
	case domain.RoleAdmin:
		return true
	case domain.RoleDriver:
		return p.AssignedDriverID == nil || *p.AssignedDriverID == actorID
	default:
		return p.RequestedByID == actorID
	}
}

func strPtr(s string) *string { return &s }

// IsNotFound reports whether err is a missing-record error from any layer.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, domain.ErrNotFound)
}
