package favorites

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quitute-doce-desejo/repository"
)

func TestToggle(t *testing.T) {
	ids := Toggle(nil, "brigadeiro", true)
	assert.Equal(t, []string{"brigadeiro"}, ids)

	ids = Toggle(ids, "beijinho", true)
	assert.Equal(t, []string{"brigadeiro", "beijinho"}, ids)

	// Re-adding an existing id changes nothing.
	ids = Toggle(ids, "brigadeiro", true)
	assert.Equal(t, []string{"brigadeiro", "beijinho"}, ids)

	ids = Toggle(ids, "brigadeiro", false)
	assert.Equal(t, []string{"beijinho"}, ids)

	// Removing an absent id changes nothing.
	ids = Toggle(ids, "missing", false)
	assert.Equal(t, []string{"beijinho"}, ids)
}

func TestToggleOnThenOffRestoresSet(t *testing.T) {
	before := []string{"a", "b"}

	after := Toggle(Toggle(before, "c", true), "c", false)
	assert.Equal(t, before, after)
}

func TestServiceTogglePersists(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryFavoritesRepository()
	svc := NewService(repo)

	got := svc.Toggle(ctx, "client-1", "brigadeiro", true)
	assert.Equal(t, []string{"brigadeiro"}, got)

	// Persisted content equals the in-memory set after every toggle.
	stored, err := repo.Load(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, got, stored)

	got = svc.Toggle(ctx, "client-1", "brigadeiro", false)
	assert.Empty(t, got)
	stored, err = repo.Load(ctx, "client-1")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestServiceListUnknownClient(t *testing.T) {
	svc := NewService(repository.NewMemoryFavoritesRepository())
	assert.Empty(t, svc.List(context.Background(), "nobody"))
}

type failingRepo struct{}

func (failingRepo) Load(ctx context.Context, clientID string) ([]string, error) {
	return nil, errors.New("storage offline")
}

func (failingRepo) Save(ctx context.Context, clientID string, productIDs []string) error {
	return errors.New("storage offline")
}

func TestServiceSwallowsStorageFailures(t *testing.T) {
	svc := NewService(failingRepo{})

	// Load failure reads as empty; save failure still returns the correct
	// in-memory result for the session.
	assert.Empty(t, svc.List(context.Background(), "c"))
	got := svc.Toggle(context.Background(), "c", "brigadeiro", true)
	assert.Equal(t, []string{"brigadeiro"}, got)
}
