package domain

const (
	RoleAdmin  = "ADMIN"
	RoleUser   = "USER"
	RoleDriver = "DRIVER"
)

const (
	PickupPending    = "PENDING"
	PickupAccepted   = "ACCEPTED"
	PickupInProgress = "IN_PROGRESS"
	PickupCompleted  = "COMPLETED"
	PickupCancelled  = "CANCELLED"
)

const (
	DeliveryPickup  = "PICKUP"
	DeliveryDropoff = "DROPOFF"
)

const (
	PayoutPending   = "PENDING"
	PayoutApproved  = "APPROVED"
	PayoutRejected  = "REJECTED"
	PayoutCompleted = "COMPLETED"
)

const (
	LedgerReward  = "REWARD"
	LedgerEarning = "EARNING"
	LedgerPayout  = "PAYOUT"
)

const (
	SmsQueued = "QUEUED"
	SmsSent   = "SENT"
	SmsFailed = "FAILED"
)

// pickupTransitions is the allowed status transition table. COMPLETED and
// CANCELLED are terminal.
var pickupTransitions = map[string][]string{
	PickupPending:    {PickupAccepted, PickupCancelled},
	PickupAccepted:   {PickupInProgress, PickupCancelled},
	PickupInProgress: {PickupCompleted, PickupCancelled},
}

// CanTransition reports whether a pickup may move from one status to another.
func CanTransition(from, to string) bool {
	for _, s := range pickupTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ValidPickupStatus reports whether s is a known pickup status.
func ValidPickupStatus(s string) bool {
	switch s {
	case PickupPending, PickupAccepted, PickupInProgress, PickupCompleted, PickupCancelled:
		return true
	}
	return false
}
