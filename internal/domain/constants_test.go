package domain

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{PickupPending, PickupAccepted},
		{PickupPending, PickupCancelled},
		{PickupAccepted, PickupInProgress},
		{PickupAccepted, PickupCancelled},
		{PickupInProgress, PickupCompleted},
		{PickupInProgress, PickupCancelled},
	}
	for _, c := range allowed {
		if !CanTransition(c.from, c.to) {
			t.Errorf("CanTransition(%s, %s) = false, want true", c.from, c.to)
		}
	}

	denied := []struct{ from, to string }{
		{PickupPending, PickupInProgress},
		{PickupPending, PickupCompleted},
		{PickupAccepted, PickupCompleted},
		{PickupCompleted, PickupCancelled},
		{PickupCompleted, PickupPending},
		{PickupCancelled, PickupPending},
		{PickupCancelled, PickupCompleted},
		{PickupInProgress, PickupAccepted},
	}
	for _, c := range denied {
		if CanTransition(c.from, c.to) {
			t.Errorf("CanTransition(%s, %s) = true, want false", c.from, c.to)
		}
	}
}

func TestValidPickupStatus(t *testing.T) {
	for _, s := range []string{PickupPending, PickupAccepted, PickupInProgress, PickupCompleted, PickupCancelled} {
		if !ValidPickupStatus(s) {
			t.Errorf("ValidPickupStatus(%s) = false", s)
		}
	}
	for _, s := range []string{"", "pending", "DONE", "completed"} {
		if ValidPickupStatus(s) {
			t.Errorf("ValidPickupStatus(%q) = true", s)
		}
	}
}
