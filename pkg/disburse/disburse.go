package disburse

import "context"

// Transfer describes a single bank transfer to an earner.
type Transfer struct {
	OwnerID     uint
	Amount      int64
	Currency    string
	BankName    string
	BankAccount string
	Reference   string // payout reference, used as the idempotency key
	Description string
}

// Receipt is the gateway's acknowledgement of a transfer.
type Receipt struct {
	ExternalRef string
	Status      string
}

// Gateway sends money out of the platform. Implementations must be safe to
// retry with the same Reference.
type Gateway interface {
	Disburse(ctx context.Context, t Transfer) (*Receipt, error)
}
