package shipping

import (
	"sync"
	"time"

	"github.com/georgemunganga/awe-electronics/internal/apperr"
)

type memoryRepo struct {
	mu        sync.RWMutex
	shipments []Shipment
	now       func() time.Time
}

// NewMemoryRepository returns a store holding a copy of seed. now may be nil.
func NewMemoryRepository(seed []Shipment, now func() time.Time) Repository {
	if now == nil {
		now = time.Now
	}
	shipments := make([]Shipment, len(seed))
	copy(shipments, seed)
	return &memoryRepo{shipments: shipments, now: now}
}

func (r *memoryRepo) Create(s Shipment) Shipment {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := 1
	for _, existing := range r.shipments {
		if existing.ID >= next {
			next = existing.ID + 1
		}
	}
	s.ID = next
	if s.Status == "" {
		s.Status = StatusPending
	}
	if s.TrackingNumber == "" {
		s.TrackingNumber = GenerateTrackingNumber()
	}
	ts := r.now().UTC()
	s.CreatedAt, s.UpdatedAt = ts, ts
	r.shipments = append(r.shipments, s)
	return s
}

func (r *memoryRepo) GetByOrderID(orderID int) (Shipment, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.shipments {
		if s.OrderID == orderID {
			return s, true
		}
	}
	return Shipment{}, false
}

func (r *memoryRepo) List() []Shipment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Shipment, len(r.shipments))
	copy(out, r.shipments)
	return out
}

func (r *memoryRepo) UpdateStatus(id int, status Status) (Shipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.shipments {
		if r.shipments[i].ID == id {
			r.shipments[i].Status = status
			r.shipments[i].UpdatedAt = r.now().UTC()
			return r.shipments[i], nil
		}
	}
	return Shipment{}, apperr.NotFound("shipment", id)
}
