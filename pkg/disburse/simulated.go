package disburse

import (
	"context"
	"fmt"
	"log"
)

// SimulatedGateway accepts every transfer and fabricates a receipt. It stands
// in for a real banking integration in development and tests.
type SimulatedGateway struct{}

func (SimulatedGateway) Disburse(ctx context.Context, t Transfer) (*Receipt, error) {
	if t.Amount <= 0 {
		return nil, fmt.Errorf("disburse: non-positive amount %d", t.Amount)
	}
	log.Printf("[Disburse] simulated transfer %s: %d %s to %s %s",
		t.Reference, t.Amount, t.Currency, t.BankName, t.BankAccount)
	return &Receipt{ExternalRef: "sim-" + t.Reference, Status: "SETTLED"}, nil
}
