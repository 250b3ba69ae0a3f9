package repository

import (
	"context"
	"sync"
)

// MemoryFavoritesRepository keeps favorites in process memory. Used when
// the service runs without a database, and in tests. Contents are lost on
// restart, which mirrors a browser with storage disabled.
type MemoryFavoritesRepository struct {
	mu   sync.Mutex
	sets map[string][]string
}

// NewMemoryFavoritesRepository creates a new MemoryFavoritesRepository
func NewMemoryFavoritesRepository() *MemoryFavoritesRepository {
	return &MemoryFavoritesRepository{
		sets: make(map[string][]string),
	}
}

// Ensure MemoryFavoritesRepository implements FavoritesRepositoryInterface
var _ FavoritesRepositoryInterface = (*MemoryFavoritesRepository)(nil)

// Load returns the favorites set for a client, empty when unknown.
func (r *MemoryFavoritesRepository) Load(ctx context.Context, clientID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids, ok := r.sets[clientID]
	if !ok {
		return []string{}, nil
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out, nil
}

// Save overwrites the full favorites set for a client.
func (r *MemoryFavoritesRepository) Save(ctx context.Context, clientID string, productIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, len(productIDs))
	copy(ids, productIDs)
	r.sets[clientID] = ids
	return nil
}
