package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"quitute-doce-desejo/db"
)

// FavoritesRepository persists favorites in PostgreSQL. Each client owns a
// single row carrying the whole set as a JSON array: write-through on
// every toggle, no schema versioning.
type FavoritesRepository struct{}

// NewFavoritesRepository creates a new FavoritesRepository
func NewFavoritesRepository() *FavoritesRepository {
	return &FavoritesRepository{}
}

// Ensure FavoritesRepository implements FavoritesRepositoryInterface
var _ FavoritesRepositoryInterface = (*FavoritesRepository)(nil)

// EnsureSchema creates the favorites table when it does not exist yet.
func (r *FavoritesRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS qd_favorites (
			client_id   TEXT PRIMARY KEY,
			product_ids JSONB NOT NULL DEFAULT '[]',
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := db.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create favorites table: %w", err)
	}
	return nil
}

// Load returns the favorites set for a client. A missing row or a corrupt
// payload both come back as the empty set: losing favorites degrades the
// session, it never breaks it.
func (r *FavoritesRepository) Load(ctx context.Context, clientID string) ([]string, error) {
	if strings.TrimSpace(clientID) == "" {
		return []string{}, nil
	}

	var raw []byte
	query := `SELECT product_ids FROM qd_favorites WHERE client_id = $1`
	err := db.DB.QueryRowContext(ctx, query, clientID).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		log.Printf("⚠️  Load: corrupt favorites payload for client %s, treating as empty: %v", clientID, err)
		return []string{}, nil
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// Save overwrites the full favorites set for a client.
func (r *FavoritesRepository) Save(ctx context.Context, clientID string, productIDs []string) error {
	if strings.TrimSpace(clientID) == "" {
		return fmt.Errorf("client_id cannot be empty")
	}

	if productIDs == nil {
		productIDs = []string{}
	}
	raw, err := json.Marshal(productIDs)
	if err != nil {
		return fmt.Errorf("failed to serialize favorites: %w", err)
	}

	query := `
		INSERT INTO qd_favorites (client_id, product_ids, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (client_id)
		DO UPDATE SET product_ids = EXCLUDED.product_ids, updated_at = now()
	`
	if _, err := db.DB.ExecContext(ctx, query, clientID, raw); err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}
	return nil
}
