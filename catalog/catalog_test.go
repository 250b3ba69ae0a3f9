package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quitute-doce-desejo/models"
)

func TestListProductsFiltersNonPositivePrices(t *testing.T) {
	c := New([]models.Product{
		{ID: "a", Name: "A", PriceCents: 650},
		{ID: "b", Name: "B", PriceCents: 0},
		{ID: "c", Name: "C", PriceCents: -100},
		{ID: "d", Name: "D", PriceCents: 1},
	}, nil, nil)

	products := c.ListProducts()
	require.Len(t, products, 2)
	assert.Equal(t, "a", products[0].ID)
	assert.Equal(t, "d", products[1].ID)

	// A non-orderable product is invisible to lookups too.
	_, ok := c.ProductByID("b")
	assert.False(t, ok)
}

func TestListBundlesUnfiltered(t *testing.T) {
	c := New(nil, []models.Bundle{
		{ID: "x", PriceCents: 0, Available: false},
		{ID: "y", PriceCents: 4500, Available: true},
	}, nil)

	assert.Len(t, c.ListBundles(), 2)

	b, ok := c.BundleByID("x")
	require.True(t, ok)
	assert.False(t, b.Available)
}

func TestZoneByID(t *testing.T) {
	c := New(nil, nil, []models.DeliveryZone{
		{ID: "limoeiro", Name: "Limoeiro", FeeCents: 800},
		{ID: "seminario", Name: "Seminário", FeeCents: 1200},
	})

	z, ok := c.ZoneByID("seminario")
	require.True(t, ok)
	assert.Equal(t, int64(1200), z.FeeCents)

	_, ok = c.ZoneByID("nope")
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"), []byte(`[
		{"id": "brigadeiro", "name": "Brigadeiro", "price": 6.5, "unit": "un", "category": "docinhos"},
		{"id": "encomenda", "name": "Sob encomenda", "price": 0, "unit": "un", "category": "encomendas"}
	]`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "promotions.json"), []byte(`{
		"bundles": [
			{"id": "combo", "name": "Combo", "price": 120, "items": [{"productId": "brigadeiro", "qty": 25}], "available": true}
		]
	}`), 0644))

	c, err := Load(dir, []models.DeliveryZone{{ID: "limoeiro", Name: "Limoeiro", FeeCents: 800}})
	require.NoError(t, err)

	products := c.ListProducts()
	require.Len(t, products, 1)
	assert.Equal(t, int64(650), products[0].PriceCents)

	bundles := c.ListBundles()
	require.Len(t, bundles, 1)
	assert.Equal(t, int64(12000), bundles[0].PriceCents)
	require.Len(t, bundles[0].Items, 1)
	assert.Equal(t, 25, bundles[0].Items[0].Qty)

	_, ok := c.ZoneByID("limoeiro")
	assert.True(t, ok)
}

func TestLoadMissingFiles(t *testing.T) {
	_, err := Load(t.TempDir(), nil)
	assert.Error(t, err)
}
