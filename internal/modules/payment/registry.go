package payment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Registry maps method names to gateways and remembers the order they were registered in.
type Registry struct {
	mu       sync.RWMutex
	order    []Method
	gateways map[Method]Gateway
	log      *zap.Logger
}

func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{gateways: make(map[Method]Gateway), log: log}
}

// NewDefaultRegistry registers the simulated gateways: Credit Card, PayPal, Bank Transfer,
// Apple Pay and, when inStore is set, Pay in Store.
func NewDefaultRegistry(log *zap.Logger, inStore bool, now func() time.Time) *Registry {
	r := NewRegistry(log)
	r.Register(MethodCreditCard, NewSimulatedGateway("CC", now))
	r.Register(MethodPayPal, NewSimulatedGateway("PP", now))
	r.Register(MethodBankTransfer, NewSimulatedGateway("BT", now))
	r.Register(MethodApplePay, NewSimulatedGateway("AP", now))
	if inStore {
		r.Register(MethodInStore, NewSimulatedGateway("SHOP", now))
	}
	return r
}

// Register adds or replaces the gateway for method. Replacing keeps the original position.
func (r *Registry) Register(method Method, gw Gateway) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.gateways[method]; !exists {
		r.order = append(r.order, method)
	}
	r.gateways[method] = gw
}

// AvailableMethods returns the registered method names in registration order.
func (r *Registry) AvailableMethods() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	for i, m := range r.order {
		out[i] = string(m)
	}
	return out
}

// ProcessPayment charges amount through the named method. It never returns an error or
// panics: unknown methods, gateway errors and gateway panics all come back as
// Result{Success: false}.
func (r *Registry) ProcessPayment(ctx context.Context, method string, amount float64) (res Result) {
	m := Method(method)
	r.mu.RLock()
	gw, ok := r.gateways[m]
	r.mu.RUnlock()
	if !ok {
		r.log.Warn("unsupported payment method", zap.String("method", method))
		return Result{Method: m, Message: fmt.Sprintf("Payment method '%s' is not supported", method)}
	}

	defer func() {
		if p := recover(); p != nil {
			r.log.Error("payment gateway panicked", zap.String("method", method), zap.Any("panic", p))
			res = Result{Method: m, Message: fmt.Sprintf("Payment failed: %v", p)}
		}
	}()

	txID, err := gw.Pay(ctx, amount)
	if err != nil {
		r.log.Warn("payment declined", zap.String("method", method), zap.Float64("amount", amount), zap.Error(err))
		return Result{Method: m, Message: "Payment failed: " + err.Error()}
	}

	r.log.Info("payment processed",
		zap.String("method", method),
		zap.Float64("amount", amount),
		zap.String("transaction_id", txID),
	)
	msg, ok := successMessages[m]
	if !ok {
		msg = method + " payment successful"
	}
	return Result{Success: true, Method: m, TransactionID: txID, Message: msg}
}
