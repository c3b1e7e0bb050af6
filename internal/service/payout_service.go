package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"bluecycle/config"
	"bluecycle/internal/domain"
	"bluecycle/internal/models"
	"bluecycle/pkg/disburse"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PayoutService owns withdrawal requests and the approval workflow
// (PENDING -> APPROVED -> COMPLETED, PENDING -> REJECTED). The ledger debit is
// written in the same transaction as the approval and linked back by key, so
// there is nothing to reconcile afterwards.
type PayoutService struct {
	db      *gorm.DB
	cfg     *config.SettlementConfig
	gateway disburse.Gateway
}

func NewPayoutService(db *gorm.DB, cfg *config.SettlementConfig, gw disburse.Gateway) *PayoutService {
	return &PayoutService{db: db, cfg: cfg, gateway: gw}
}

// AvailableBalance is the single source of truth for what an owner may still
// withdraw: the signed ledger sum minus amounts locked in pending requests.
// Approved and completed payouts already have their debit in the ledger.
func (s *PayoutService) AvailableBalance(ownerID uint) (int64, error) {
	return s.availableBalance(s.db, ownerID)
}

func (s *PayoutService) availableBalance(tx *gorm.DB, ownerID uint) (int64, error) {
	var ledger struct{ Total int64 }
	err := tx.Model(&models.LedgerEntry{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("owner_id = ?", ownerID).Scan(&ledger).Error
	if err != nil {
		return 0, err
	}
	var pending struct{ Total int64 }
	err = tx.Model(&models.PayoutRequest{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("owner_id = ? AND status = ?", ownerID, domain.PayoutPending).
		Scan(&pending).Error
	if err != nil {
		return 0, err
	}
	return ledger.Total - pending.Total, nil
}

// Create validates bounds and balance server-side before anything is persisted.
func (s *PayoutService) Create(ownerID uint, ownerRole string, amount int64, bankName, bankAccount string) (*models.PayoutRequest, error) {
	if amount < s.cfg.MinWithdrawal {
		return nil, domain.Validationf("amount below minimum withdrawal of %d", s.cfg.MinWithdrawal)
	}
	if amount > s.cfg.MaxWithdrawal {
		return nil, domain.Validationf("amount above maximum withdrawal of %d", s.cfg.MaxWithdrawal)
	}
	p := &models.PayoutRequest{
		OwnerID:     ownerID,
		OwnerRole:   ownerRole,
		Amount:      amount,
		Status:      domain.PayoutPending,
		Reference:   fmt.Sprintf("po-%s", uuid.New().String()),
		BankName:    bankName,
		BankAccount: bankAccount,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		available, err := s.availableBalance(tx, ownerID)
		if err != nil {
			return err
		}
		if amount > available {
			return domain.Validationf("amount %d exceeds available balance %d", amount, available)
		}
		return tx.Create(p).Error
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Approve debits the ledger and marks the request approved in one transaction.
// The guarded UPDATE on the PENDING status means a concurrent second approval
// affects zero rows and never reaches the debit.
func (s *PayoutService) Approve(id uint, adminNotes string) (*models.PayoutRequest, error) {
	p, err := s.get(id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.PayoutRequest{}).
			Where("id = ? AND status = ?", p.ID, domain.PayoutPending).
			Updates(map[string]interface{}{
				"status":      domain.PayoutApproved,
				"approved_at": now,
				"admin_notes": adminNotes,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.Conflictf("payout %d is not pending", p.ID)
		}
		debit := &models.LedgerEntry{
			OwnerID:         p.OwnerID,
			Type:            domain.LedgerPayout,
			Amount:          -p.Amount,
			PayoutRequestID: &p.ID,
			Description:     fmt.Sprintf("Withdrawal %s", p.Reference),
		}
		if err := tx.Create(debit).Error; err != nil {
			return err
		}
		return tx.Model(&models.PayoutRequest{}).
			Where("id = ?", p.ID).
			Update("ledger_entry_id", debit.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return s.get(id)
}

// Reject records the reason; no ledger effect.
func (s *PayoutService) Reject(id uint, reason, adminNotes string) (*models.PayoutRequest, error) {
	p, err := s.get(id)
	if err != nil {
		return nil, err
	}
	res := s.db.Model(&models.PayoutRequest{}).
		Where("id = ? AND status = ?", p.ID, domain.PayoutPending).
		Updates(map[string]interface{}{
			"status":           domain.PayoutRejected,
			"rejection_reason": reason,
			"admin_notes":      adminNotes,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.Conflictf("payout %d is not pending", p.ID)
	}
	return s.get(id)
}

// Complete pushes an approved payout through the disbursement gateway and
// marks it transferred; the debit already landed at approval time. The guarded
// status update runs first so a concurrent second completion never reaches the
// gateway twice.
func (s *PayoutService) Complete(ctx context.Context, id uint) (*models.PayoutRequest, error) {
	p, err := s.get(id)
	if err != nil {
		return nil, err
	}
	res := s.db.Model(&models.PayoutRequest{}).
		Where("id = ? AND status = ?", p.ID, domain.PayoutApproved).
		Updates(map[string]interface{}{
			"status":       domain.PayoutCompleted,
			"completed_at": time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.Conflictf("payout %d is not approved", p.ID)
	}
	if s.gateway != nil {
		receipt, err := s.gateway.Disburse(ctx, disburse.Transfer{
			OwnerID:     p.OwnerID,
			Amount:      p.Amount,
			Currency:    s.cfg.Currency,
			BankName:    p.BankName,
			BankAccount: p.BankAccount,
			Reference:   p.Reference,
			Description: fmt.Sprintf("Payout %s", p.Reference),
		})
		if err != nil {
			log.Printf("[Payout] disburse %s failed: %v", p.Reference, err)
		} else if err := s.db.Model(&models.PayoutRequest{}).
			Where("id = ?", p.ID).
			Update("external_ref", receipt.ExternalRef).Error; err != nil {
			return nil, err
		}
	}
	return s.get(id)
}

func (s *PayoutService) get(id uint) (*models.PayoutRequest, error) {
	var p models.PayoutRequest
	if err := s.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
