package repository

import "context"

// FavoritesRepositoryInterface defines the contract for favorites
// persistence: one JSON array of product ids per client.
type FavoritesRepositoryInterface interface {
	// Load returns the favorites set for a client. A missing client is an
	// empty set, not an error.
	Load(ctx context.Context, clientID string) ([]string, error)
	// Save overwrites the full set for a client.
	Save(ctx context.Context, clientID string, productIDs []string) error
}
