package cart

import (
	"sync"

	"github.com/google/uuid"

	"github.com/yolimar-textil/storefront-api/internal/pricing"
)

// Store hands out one cart per session. Carts live in memory only; a session
// that goes away takes its cart with it.
type Store struct {
	mu             sync.RWMutex
	carts          map[string]*Cart
	catalogProgram pricing.Program
	designProgram  pricing.Program
}

// NewStore creates a session store issuing carts governed by the two
// discount programs.
func NewStore(catalogProgram, designProgram pricing.Program) *Store {
	return &Store{
		carts:          make(map[string]*Cart),
		catalogProgram: catalogProgram,
		designProgram:  designProgram,
	}
}

// NewSessionID mints a session identifier for the cart cookie.
func NewSessionID() string {
	return uuid.New().String()
}

// Get returns the session's cart, creating it on first use.
func (s *Store) Get(sessionID string) *Cart {
	s.mu.RLock()
	c, ok := s.carts[sessionID]
	s.mu.RUnlock()
	if ok {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[sessionID]; ok {
		return c
	}
	c = New(s.catalogProgram, s.designProgram)
	s.carts[sessionID] = c
	return c
}

// Drop discards a session's cart.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
