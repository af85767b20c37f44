package payment

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Gateway is the provider-agnostic interface every payment adapter must implement.
type Gateway interface {
	// Pay charges amount and returns the provider's transaction reference.
	Pay(ctx context.Context, amount float64) (transactionID string, err error)
}

// GatewayFunc adapts a function to the Gateway interface.
type GatewayFunc func(ctx context.Context, amount float64) (string, error)

func (f GatewayFunc) Pay(ctx context.Context, amount float64) (string, error) { return f(ctx, amount) }

var ErrInvalidAmount = errors.New("amount must be greater than 0")

// ── Simulated gateways ────────────────────────────────────────────────────────
// None of these talk to a provider. Each accepts any positive amount and issues a
// reference of the form <PREFIX>-<unix millis>.

type simulatedGateway struct {
	prefix string
	now    func() time.Time
}

// NewSimulatedGateway returns a gateway that always approves. now may be nil.
func NewSimulatedGateway(prefix string, now func() time.Time) Gateway {
	if now == nil {
		now = time.Now
	}
	return &simulatedGateway{prefix: prefix, now: now}
}

func (g *simulatedGateway) Pay(ctx context.Context, amount float64) (string, error) {
	if amount <= 0 {
		return "", ErrInvalidAmount
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d", g.prefix, g.now().UnixMilli()), nil
}

// successMessages mirror the confirmation text shown at checkout.
var successMessages = map[Method]string{
	MethodCreditCard:   "Credit card payment successful",
	MethodPayPal:       "PayPal payment successful",
	MethodBankTransfer: "Bank transfer initiated successfully",
	MethodApplePay:     "Apple Pay payment successful",
	MethodInStore:      "Payment will be collected in store",
}
