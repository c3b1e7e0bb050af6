package service

import (
	"context"
	"strings"
	"testing"

	"bluecycle/config"
	"bluecycle/internal/domain"
	"bluecycle/internal/models"
	"bluecycle/pkg/disburse"

	"gorm.io/gorm"
)

func testSettlementConfig() *config.SettlementConfig {
	return &config.SettlementConfig{MinWithdrawal: 20000, MaxWithdrawal: 100000000, Currency: "IDR"}
}

func credit(t *testing.T, db *gorm.DB, ownerID uint, amount int64) {
	t.Helper()
	err := db.Create(&models.LedgerEntry{
		OwnerID:     ownerID,
		Type:        domain.LedgerReward,
		Amount:      amount,
		Description: "test credit",
	}).Error
	if err != nil {
		t.Fatalf("credit: %v", err)
	}
}

func TestPayoutCreateBounds(t *testing.T) {
	db := testDB(t)
	svc := NewPayoutService(db, testSettlementConfig(), nil)
	user := seedUser(t, db, domain.RoleUser)
	credit(t, db, user.ID, 200000000)

	if _, err := svc.Create(user.ID, domain.RoleUser, 19999, "BCA", "123"); !domain.IsValidation(err) {
		t.Fatalf("below minimum: err = %v, want validation", err)
	}
	if _, err := svc.Create(user.ID, domain.RoleUser, 100000001, "BCA", "123"); !domain.IsValidation(err) {
		t.Fatalf("above maximum: err = %v, want validation", err)
	}
	if _, err := svc.Create(user.ID, domain.RoleUser, 20000, "BCA", "123"); err != nil {
		t.Fatalf("at minimum: %v", err)
	}
}

func TestPayoutCreateChecksBalance(t *testing.T) {
	db := testDB(t)
	svc := NewPayoutService(db, testSettlementConfig(), nil)
	user := seedUser(t, db, domain.RoleUser)
	credit(t, db, user.ID, 500000)

	if _, err := svc.Create(user.ID, domain.RoleUser, 600000, "BCA", "123"); !domain.IsValidation(err) {
		t.Fatalf("over balance: err = %v, want validation", err)
	}

	p, err := svc.Create(user.ID, domain.RoleUser, 150000, "BCA", "123")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Status != domain.PayoutPending {
		t.Fatalf("status = %s, want PENDING", p.Status)
	}
	if !strings.HasPrefix(p.Reference, "po-") {
		t.Fatalf("reference = %q, want po- prefix", p.Reference)
	}

	// The pending request locks its amount out of the available balance.
	available, err := svc.AvailableBalance(user.ID)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if available != 350000 {
		t.Fatalf("available = %d, want 350000", available)
	}
	if _, err := svc.Create(user.ID, domain.RoleUser, 400000, "BCA", "123"); !domain.IsValidation(err) {
		t.Fatalf("over remaining balance: err = %v, want validation", err)
	}
}

func TestPayoutApproveDebitsOnce(t *testing.T) {
	db := testDB(t)
	svc := NewPayoutService(db, testSettlementConfig(), nil)
	driver := seedUser(t, db, domain.RoleDriver)
	credit(t, db, driver.ID, 500000)

	p, err := svc.Create(driver.ID, domain.RoleDriver, 150000, "Mandiri", "456")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	approved, err := svc.Approve(p.ID, "ok")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != domain.PayoutApproved || approved.ApprovedAt == nil {
		t.Fatalf("payout = %+v, want APPROVED with approved_at", approved)
	}
	if approved.LedgerEntryID == nil {
		t.Fatal("ledger_entry_id not linked")
	}
	var debit models.LedgerEntry
	if err := db.First(&debit, *approved.LedgerEntryID).Error; err != nil {
		t.Fatalf("debit entry: %v", err)
	}
	if debit.Amount != -150000 || debit.Type != domain.LedgerPayout {
		t.Fatalf("debit = %+v, want -150000 PAYOUT", debit)
	}
	if debit.PayoutRequestID == nil || *debit.PayoutRequestID != p.ID {
		t.Fatalf("debit not linked to payout %d", p.ID)
	}

	// A second approval affects zero rows and writes no second debit.
	if _, err := svc.Approve(p.ID, "again"); !domain.IsConflict(err) {
		t.Fatalf("second approve err = %v, want conflict", err)
	}
	if got := countLedger(t, db, driver.ID, domain.LedgerPayout); got != 1 {
		t.Fatalf("payout debits = %d, want 1", got)
	}

	available, err := svc.AvailableBalance(driver.ID)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if available != 350000 {
		t.Fatalf("available = %d, want 350000", available)
	}
}

func TestPayoutRejectHasNoLedgerEffect(t *testing.T) {
	db := testDB(t)
	svc := NewPayoutService(db, testSettlementConfig(), nil)
	user := seedUser(t, db, domain.RoleUser)
	credit(t, db, user.ID, 500000)

	p, err := svc.Create(user.ID, domain.RoleUser, 100000, "BCA", "123")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	rejected, err := svc.Reject(p.ID, "bank account mismatch", "")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != domain.PayoutRejected || rejected.RejectionReason == "" {
		t.Fatalf("payout = %+v, want REJECTED with reason", rejected)
	}
	if got := countLedger(t, db, user.ID, domain.LedgerPayout); got != 0 {
		t.Fatalf("payout debits = %d, want 0", got)
	}
	// Rejection releases the locked amount.
	available, err := svc.AvailableBalance(user.ID)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if available != 500000 {
		t.Fatalf("available = %d, want 500000", available)
	}
	// A rejected request cannot be approved afterwards.
	if _, err := svc.Approve(p.ID, ""); !domain.IsConflict(err) {
		t.Fatalf("approve rejected err = %v, want conflict", err)
	}
}

func TestPayoutCompleteDisburses(t *testing.T) {
	db := testDB(t)
	svc := NewPayoutService(db, testSettlementConfig(), disburse.SimulatedGateway{})
	driver := seedUser(t, db, domain.RoleDriver)
	credit(t, db, driver.ID, 500000)

	p, err := svc.Create(driver.ID, domain.RoleDriver, 150000, "Mandiri", "456")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	// Completing before approval is rejected.
	if _, err := svc.Complete(context.Background(), p.ID); !domain.IsConflict(err) {
		t.Fatalf("complete pending err = %v, want conflict", err)
	}
	if _, err := svc.Approve(p.ID, ""); err != nil {
		t.Fatalf("approve: %v", err)
	}
	done, err := svc.Complete(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.Status != domain.PayoutCompleted || done.CompletedAt == nil {
		t.Fatalf("payout = %+v, want COMPLETED with completed_at", done)
	}
	if done.ExternalRef != "sim-"+p.Reference {
		t.Fatalf("external_ref = %q, want sim-%s", done.ExternalRef, p.Reference)
	}
	// Completion does not debit again; approval already did.
	if got := countLedger(t, db, driver.ID, domain.LedgerPayout); got != 1 {
		t.Fatalf("payout debits = %d, want 1", got)
	}
}
