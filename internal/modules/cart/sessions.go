package cart

import "sync"

// Sessions keeps one cart per signed-in user for the HTTP surface.
type Sessions struct {
	mu    sync.Mutex
	carts map[int]*Cart
}

func NewSessions() *Sessions {
	return &Sessions{carts: make(map[int]*Cart)}
}

// Get returns the user's cart, creating an empty one on first use.
func (s *Sessions) Get(userID int) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[userID]
	if !ok {
		c = New()
		s.carts[userID] = c
	}
	return c
}
