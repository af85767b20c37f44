package catalog

import (
	"sync"

	"github.com/georgemunganga/awe-electronics/internal/apperr"
)

type memoryRepo struct {
	mu       sync.RWMutex
	products []Product
}

// NewMemoryRepository returns a store holding a private copy of seed.
func NewMemoryRepository(seed []Product) Repository {
	products := make([]Product, len(seed))
	copy(products, seed)
	return &memoryRepo{products: products}
}

func (r *memoryRepo) GetAll() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *memoryRepo) GetByID(id int) (Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		return r.products[i], true
	}
	return Product{}, false
}

func (r *memoryRepo) Update(p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(p.ID)
	if i < 0 {
		return Product{}, apperr.NotFound("product", p.ID)
	}
	r.products[i] = p
	return p, nil
}

func (r *memoryRepo) UpdateDescription(id int, description string) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return Product{}, apperr.NotFound("product", id)
	}
	r.products[i].Description = description
	return r.products[i], nil
}

func (r *memoryRepo) Add(p Product) Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := 1
	for _, existing := range r.products {
		if existing.ID >= next {
			next = existing.ID + 1
		}
	}
	p.ID = next
	r.products = append(r.products, p)
	return p
}

func (r *memoryRepo) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return apperr.NotFound("product", id)
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return nil
}

func (r *memoryRepo) AdjustStock(id int, delta int) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return Product{}, apperr.NotFound("product", id)
	}
	stock := r.products[i].Stock + delta
	if stock < 0 {
		stock = 0
	}
	r.products[i].Stock = stock
	return r.products[i], nil
}

// indexOf must be called with r.mu held.
func (r *memoryRepo) indexOf(id int) int {
	for i, p := range r.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
