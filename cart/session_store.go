package cart

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrCartNotFound is returned when a session id has no cart.
var ErrCartNotFound = errors.New("cart not found")

// SessionStore keeps one cart per storefront session, keyed by a server
// issued id. Carts themselves are single-owner; the store's lock is what
// keeps concurrent HTTP requests from interleaving mutations.
type SessionStore struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewSessionStore creates an empty SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		carts: make(map[string]*Cart),
	}
}

// Create makes a new empty cart and returns its session id.
func (s *SessionStore) Create() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.carts[id] = New()
	return id
}

// Do runs fn against the cart for the given session id while holding the
// store lock. Returns ErrCartNotFound when the id is unknown.
func (s *SessionStore) Do(id string, fn func(c *Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[id]
	if !ok {
		return ErrCartNotFound
	}
	return fn(c)
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts)
}
