package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Sessions owns one cart per browsing session. Carts live for the process
// lifetime only; there is no expiry and no persistence.
type Sessions struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewSessions() *Sessions {
	return &Sessions{carts: make(map[string]*Cart)}
}

// NewID mints an opaque session identifier for the cookie.
func (s *Sessions) NewID() string { return uuid.NewString() }

// Get returns the cart for the session, creating an empty one on first use.
func (s *Sessions) Get(id string) *Cart {
	s.mu.RLock()
	c := s.carts[id]
	s.mu.RUnlock()
	if c != nil {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if c = s.carts[id]; c == nil {
		c = New()
		s.carts[id] = c
	}
	return c
}

func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.carts)
}
