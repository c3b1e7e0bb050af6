package service

import (
	"testing"

	"bluecycle/internal/domain"
	"bluecycle/internal/models"
)

func TestSplitPrice(t *testing.T) {
	cases := []struct {
		price, driver, admin int64
	}{
		{0, 0, 0},
		{100, 80, 20},
		{100000, 80000, 20000},
		{99, 79, 19},  // floor division, 1 unit unassigned
		{101, 80, 20}, // floor division again
		{1, 0, 0},
	}
	for _, c := range cases {
		driver, admin := SplitPrice(c.price)
		if driver != c.driver || admin != c.admin {
			t.Errorf("SplitPrice(%d) = (%d, %d), want (%d, %d)", c.price, driver, admin, c.driver, c.admin)
		}
		if driver+admin > c.price {
			t.Errorf("SplitPrice(%d): shares %d+%d exceed price", c.price, driver, admin)
		}
	}
}

func TestCreateSetsPendingAndSplit(t *testing.T) {
	db := testDB(t)
	svc := NewPickupService(db)
	user := seedUser(t, db, domain.RoleUser)

	p := seedPickup(t, db, svc, user.ID, 150000)
	if p.Status != domain.PickupPending {
		t.Fatalf("status = %s, want PENDING", p.Status)
	}
	if p.DriverEarnings != 120000 || p.AdminCommission != 30000 {
		t.Fatalf("split = (%d, %d), want (120000, 30000)", p.DriverEarnings, p.AdminCommission)
	}
}

func TestCreateRejectsNegativePrice(t *testing.T) {
	db := testDB(t)
	svc := NewPickupService(db)
	user := seedUser(t, db, domain.RoleUser)

	err := svc.Create(&models.Pickup{
		Address:        "Jl. Thamrin 2",
		WasteType:      "glass",
		QuantityKg:     1,
		DeliveryMethod: domain.DeliveryDropoff,
		Price:          -1,
		RequestedByID:  user.ID,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestInvalidTransitionRejected(t *testing.T) {
	db := testDB(t)
	svc := NewPickupService(db)
	admin := seedUser(t, db, domain.RoleAdmin)
	user := seedUser(t, db, domain.RoleUser)
	p := seedPickup(t, db, svc, user.ID, 50000)

	// PENDING cannot jump straight to COMPLETED.
	_, err := svc.Update(p.ID, PickupUpdate{Status: strPtr(domain.PickupCompleted)}, admin.ID, domain.RoleAdmin)
	if !domain.IsConflict(err) {
		t.Fatalf("err = %v, want conflict", err)
	}
	if got := countLedger(t, db, user.ID, ""); got != 0 {
		t.Fatalf("ledger rows = %d, want 0", got)
	}
}

func TestInProgressRequiresDriver(t *testing.T) {
	db := testDB(t)
	svc := NewPickupService(db)
	admin := seedUser(t, db, domain.RoleAdmin)
	user := seedUser(t, db, domain.RoleUser)
	p := seedPickup(t, db, svc, user.ID, 50000)

	if _, err := svc.Update(p.ID, PickupUpdate{Status: strPtr(domain.PickupAccepted)}, admin.ID, domain.RoleAdmin); err != nil {
		t.Fatalf("accept: %v", err)
	}
	_, err := svc.Update(p.ID, PickupUpdate{Status: strPtr(domain.PickupInProgress)}, admin.ID, domain.RoleAdmin)
	if !domain.IsValidation(err) {
		t.Fatalf("err = %v, want validation error (no driver)", err)
	}
}

func TestCompleteSettlesOnce(t *testing.T) {
	db := testDB(t)
	svc := NewPickupService(db)
	admin := seedUser(t, db, domain.RoleAdmin)
	user := seedUser(t, db, domain.RoleUser)
	driver := seedUser(t, db, domain.RoleDriver)
	p := seedPickup(t, db, svc, user.ID, 100000)

	if _, err := svc.Update(p.ID, PickupUpdate{Status: strPtr(domain.PickupAccepted)}, admin.ID, domain.RoleAdmin); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if _, err := svc.Take(p.ID, driver.ID); err != nil {
		t.Fatalf("take: %v", err)
	}
	got, err := svc.Update(p.ID, PickupUpdate{Status: strPtr(domain.PickupCompleted)}, driver.ID, domain.RoleDriver)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got.Status != domain.PickupCompleted || got.CompletedAt == nil {
		t.Fatalf("pickup = %+v, want COMPLETED with completed_at", got)
	}

	var reward models.LedgerEntry
	if err := db.Where("owner_id = ? AND type = ?", user.ID, domain.LedgerReward).First(&reward).Error; err != nil {
		t.Fatalf("reward entry: %v", err)
	}
	if reward.Amount != 100000 || reward.PickupID == nil || *reward.PickupID != p.ID {
		t.Fatalf("reward = %+v, want amount 100000 linked to pickup %d", reward, p.ID)
	}
	var earning models.LedgerEntry
	if err := db.Where("owner_id = ? AND type = ?", driver.ID, domain.LedgerEarning).First(&earning).Error; err != nil {
		t.Fatalf("earning entry: %v", err)
	}
	if earning.Amount != 80000 {
		t.Fatalf("earning amount = %d, want 80000", earning.Amount)
	}

	// Second completion attempt is a no-op conflict; no extra credits land.
	if _, err := svc.Update(p.ID, PickupUpdate{Status: strPtr(domain.PickupCompleted)}, admin.ID, domain.RoleAdmin); !domain.IsConflict(err) {
		t.Fatalf("second complete err = %v, want conflict", err)
	}
	if got := countLedger(t, db, user.ID, domain.LedgerReward); got != 1 {
		t.Fatalf("reward rows = %d, want 1", got)
	}
	if got := countLedger(t, db, driver.ID, domain.LedgerEarning); got != 1 {
		t.Fatalf("earning rows = %d, want 1", got)
	}
}

func TestPriceEditKeepsStoredSplit(t *testing.T) {
	db := testDB(t)
	svc := NewPickupService(db)
	admin := seedUser(t, db, domain.RoleAdmin)
	user := seedUser(t, db, domain.RoleUser)
	p := seedPickup(t, db, svc, user.ID, 100000)

	newPrice := int64(200000)
	got, err := svc.Update(p.ID, PickupUpdate{Price: &newPrice}, admin.ID, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Price != 200000 {
		t.Fatalf("price = %d, want 200000", got.Price)
	}
	if got.DriverEarnings != 80000 || got.AdminCommission != 20000 {
		t.Fatalf("split = (%d, %d), want original (80000, 20000)", got.DriverEarnings, got.AdminCommission)
	}
}

func TestUserOnlyCancelsOwnPickup(t *testing.T) {
	db := testDB(t)
	svc := NewPickupService(db)
	user := seedUser(t, db, domain.RoleUser)
	other := seedUser(t, db, domain.RoleUser)
	p := seedPickup(t, db, svc, user.ID, 50000)

	// Another user cannot even see the pickup.
	_, err := svc.Update(p.ID, PickupUpdate{Status: strPtr(domain.PickupCancelled)}, other.ID, domain.RoleUser)
	if !IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}

	reason := "changed my mind"
	got, err := svc.Update(p.ID, PickupUpdate{
		Status:             strPtr(domain.PickupCancelled),
		CancellationReason: &reason,
	}, user.ID, domain.RoleUser)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got.Status != domain.PickupCancelled || got.CancellationReason != reason {
		t.Fatalf("pickup = %+v, want cancelled with reason", got)
	}
}

func TestTakeAssignsDriverAtomically(t *testing.T) {
	db := testDB(t)
	svc := NewPickupService(db)
	admin := seedUser(t, db, domain.RoleAdmin)
	user := seedUser(t, db, domain.RoleUser)
	d1 := seedUser(t, db, domain.RoleDriver)
	d2 := seedUser(t, db, domain.RoleDriver)
	p := seedPickup(t, db, svc, user.ID, 50000)

	if _, err := svc.Update(p.ID, PickupUpdate{Status: strPtr(domain.PickupAccepted)}, admin.ID, domain.RoleAdmin); err != nil {
		t.Fatalf("accept: %v", err)
	}
	got, err := svc.Take(p.ID, d1.ID)
	if err != nil {
		t.Fatalf("take: %v", err)
	}
	if got.AssignedDriverID == nil || *got.AssignedDriverID != d1.ID {
		t.Fatalf("assigned driver = %v, want %d", got.AssignedDriverID, d1.ID)
	}
	// The second driver loses the race and may not see the order anymore.
	if _, err := svc.Take(p.ID, d2.ID); err == nil {
		t.Fatal("second take succeeded, want error")
	}
}
