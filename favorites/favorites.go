// Package favorites manages the per-client set of favorited product ids.
// The set is loaded on demand and written back in full on every toggle;
// persistence failures degrade to an in-session set instead of erroring.
package favorites

import (
	"context"
	"log"

	"quitute-doce-desejo/repository"
)

// Service owns favorites semantics on top of a repository.
type Service struct {
	repository repository.FavoritesRepositoryInterface
}

// NewService creates a new Service
func NewService(repo repository.FavoritesRepositoryInterface) *Service {
	return &Service{
		repository: repo,
	}
}

// List returns the favorites set for a client. Storage read failures are
// logged and reported as an empty set; the shopper just sees no hearts.
func (s *Service) List(ctx context.Context, clientID string) []string {
	ids, err := s.repository.Load(ctx, clientID)
	if err != nil {
		log.Printf("⚠️  List: failed to load favorites for client %s: %v", clientID, err)
		return []string{}
	}
	return ids
}

// Toggle adds or removes a product id and writes the whole set back.
// A failed write is logged and swallowed: the returned set is still the
// correct in-memory state for this session.
func (s *Service) Toggle(ctx context.Context, clientID, productID string, favorite bool) []string {
	ids := s.List(ctx, clientID)
	ids = Toggle(ids, productID, favorite)

	if err := s.repository.Save(ctx, clientID, ids); err != nil {
		log.Printf("⚠️  Toggle: failed to save favorites for client %s: %v", clientID, err)
	}
	return ids
}

// Toggle returns the set with productID present (favorite=true) or absent
// (favorite=false). Insertion order is preserved; adding an id that is
// already present is a no-op.
func Toggle(ids []string, productID string, favorite bool) []string {
	if favorite {
		for _, id := range ids {
			if id == productID {
				return ids
			}
		}
		return append(ids, productID)
	}

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != productID {
			out = append(out, id)
		}
	}
	return out
}
