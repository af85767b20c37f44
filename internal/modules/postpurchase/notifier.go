package postpurchase

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/georgemunganga/awe-electronics/internal/modules/order"
)

// Event describes a purchase whose payment has been taken and whose order is stored.
type Event struct {
	Order         order.Order
	PaymentMethod string
	PaymentAmount float64
}

// Handler reacts to a completed purchase. Implementations should be pointer types so
// that Attach and Detach can compare them.
type Handler interface {
	Name() string
	Handle(ctx context.Context, ev Event) error
}

// Notifier fans an Event out to its handlers, one after another, in attachment order.
type Notifier struct {
	mu       sync.RWMutex
	handlers []Handler
	log      *zap.Logger
}

func NewNotifier(log *zap.Logger) *Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Notifier{log: log}
}

// Attach appends h. Attaching a handler that is already present does nothing.
func (n *Notifier) Attach(h Handler) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.indexOf(h) >= 0 {
		return
	}
	n.handlers = append(n.handlers, h)
}

// Detach removes h if present.
func (n *Notifier) Detach(h Handler) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if i := n.indexOf(h); i >= 0 {
		n.handlers = append(n.handlers[:i:i], n.handlers[i+1:]...)
	}
}

// Handlers returns the attached handlers in order.
func (n *Notifier) Handlers() []Handler {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]Handler, len(n.handlers))
	copy(out, n.handlers)
	return out
}

// Notify runs every handler synchronously. A failing or panicking handler does not stop
// the ones after it; their errors are joined and returned.
func (n *Notifier) Notify(ctx context.Context, ev Event) error {
	var errs []error
	for _, h := range n.Handlers() {
		if err := n.run(ctx, h, ev); err != nil {
			n.log.Error("post-purchase handler failed",
				zap.String("handler", h.Name()),
				zap.Int("order_id", ev.Order.ID),
				zap.Error(err),
			)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (n *Notifier) run(ctx context.Context, h Handler, ev Event) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%s: panic: %v", h.Name(), p)
		}
	}()
	if err := h.Handle(ctx, ev); err != nil {
		return fmt.Errorf("%s: %w", h.Name(), err)
	}
	return nil
}

// indexOf must be called with n.mu held.
func (n *Notifier) indexOf(h Handler) int {
	if h == nil || !reflect.TypeOf(h).Comparable() {
		return -1
	}
	for i, existing := range n.handlers {
		if reflect.TypeOf(existing) == reflect.TypeOf(h) && existing == h {
			return i
		}
	}
	return -1
}
