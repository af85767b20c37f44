package order

import (
	"sync"
	"time"

	"github.com/georgemunganga/awe-electronics/internal/apperr"
)

type memoryRepo struct {
	mu     sync.RWMutex
	orders []Order
	now    func() time.Time
}

// NewMemoryRepository returns a ledger holding a copy of seed. now may be nil.
func NewMemoryRepository(seed []Order, now func() time.Time) Repository {
	if now == nil {
		now = time.Now
	}
	orders := make([]Order, 0, len(seed))
	for _, o := range seed {
		orders = append(orders, cloneOrder(o))
	}
	return &memoryRepo{orders: orders, now: now}
}

func (r *memoryRepo) Create(o Order) Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := 1
	for _, existing := range r.orders {
		if existing.ID >= next {
			next = existing.ID + 1
		}
	}
	ts := r.now().UTC()
	o.ID = next
	if o.OrderNumber == "" {
		o.OrderNumber = GenerateOrderNumber(ts)
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = ts
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = o.CreatedAt
	}
	o = cloneOrder(o)
	r.orders = append(r.orders, o)
	return cloneOrder(o)
}

func (r *memoryRepo) GetByID(id int) (Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			return cloneOrder(o), true
		}
	}
	return Order{}, false
}

func (r *memoryRepo) ListByUser(userID int) []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Order{}
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, cloneOrder(o))
		}
	}
	return out
}

func (r *memoryRepo) List() []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, len(r.orders))
	for i, o := range r.orders {
		out[i] = cloneOrder(o)
	}
	return out
}

func (r *memoryRepo) Update(o Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.orders {
		if existing.ID == o.ID {
			if o.CreatedAt.IsZero() {
				o.CreatedAt = existing.CreatedAt
			}
			o.UpdatedAt = r.now().UTC()
			r.orders[i] = cloneOrder(o)
			return cloneOrder(o), nil
		}
	}
	return Order{}, apperr.NotFound("order", o.ID)
}

type memoryReceiptRepo struct {
	mu       sync.RWMutex
	receipts []Receipt
	now      func() time.Time
}

// NewMemoryReceiptRepository returns a receipt store holding a copy of seed. now may be nil.
func NewMemoryReceiptRepository(seed []Receipt, now func() time.Time) ReceiptRepository {
	if now == nil {
		now = time.Now
	}
	receipts := make([]Receipt, len(seed))
	copy(receipts, seed)
	return &memoryReceiptRepo{receipts: receipts, now: now}
}

func (r *memoryReceiptRepo) Create(rc Receipt) Receipt {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := 1
	for _, existing := range r.receipts {
		if existing.ID >= next {
			next = existing.ID + 1
		}
	}
	rc.ID = next
	if rc.CreatedAt.IsZero() {
		rc.CreatedAt = r.now().UTC()
	}
	if rc.ReceiptNumber == "" {
		rc.ReceiptNumber = GenerateReceiptNumber(rc.CreatedAt)
	}
	r.receipts = append(r.receipts, rc)
	return rc
}

// GetByOrderID returns the first receipt issued for orderID.
func (r *memoryReceiptRepo) GetByOrderID(orderID int) (Receipt, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rc := range r.receipts {
		if rc.OrderID == orderID {
			return rc, true
		}
	}
	return Receipt{}, false
}

func (r *memoryReceiptRepo) List() []Receipt {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Receipt, len(r.receipts))
	copy(out, r.receipts)
	return out
}
