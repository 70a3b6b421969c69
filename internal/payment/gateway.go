package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Gateway abstracts the payment provider used to settle introduction fees.
type Gateway interface {
	// Charge executes a payment and returns the provider's payment ID.
	Charge(ctx context.Context, amount float64, method string) (string, error)
}

// simulatedGateway approves every charge without contacting a provider.
// It stands in for LINE Pay until real settlement is integrated.
type simulatedGateway struct{}

// NewSimulatedGateway creates a Gateway that always succeeds.
func NewSimulatedGateway() Gateway {
	return &simulatedGateway{}
}

// Charge returns a synthetic payment ID for any positive amount.
func (g *simulatedGateway) Charge(ctx context.Context, amount float64, method string) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("charge amount must be positive, got %f", amount)
	}
	return "sim_" + uuid.NewString(), nil
}
