// Package catalog exposes the static list of sellable products, bundle
// offers and delivery zones. Data is fixed per deployment: loaded once at
// startup, read-only afterwards.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"quitute-doce-desejo/models"
	"quitute-doce-desejo/utils"
)

// Catalog is a read-only view over the configured products and bundles.
type Catalog struct {
	products []models.Product
	bundles  []models.Bundle
	zones    []models.DeliveryZone
}

// New builds a catalog. Products are filtered to strictly positive prices
// here, once: a zero or negative price means "not orderable" and the
// product simply never shows up. A filter, not a validation error.
func New(products []models.Product, bundles []models.Bundle, zones []models.DeliveryZone) *Catalog {
	orderable := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.PriceCents > 0 {
			orderable = append(orderable, p)
		}
	}
	return &Catalog{
		products: orderable,
		bundles:  bundles,
		zones:    zones,
	}
}

// ListProducts returns all orderable products.
func (c *Catalog) ListProducts() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ListBundles returns all configured bundles, unfiltered.
func (c *Catalog) ListBundles() []models.Bundle {
	out := make([]models.Bundle, len(c.bundles))
	copy(out, c.bundles)
	return out
}

// ListZones returns the delivery-zone table.
func (c *Catalog) ListZones() []models.DeliveryZone {
	out := make([]models.DeliveryZone, len(c.zones))
	copy(out, c.zones)
	return out
}

// ProductByID looks up an orderable product.
func (c *Catalog) ProductByID(id string) (models.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// BundleByID looks up a bundle.
func (c *Catalog) BundleByID(id string) (models.Bundle, bool) {
	for _, b := range c.bundles {
		if b.ID == id {
			return b, true
		}
	}
	return models.Bundle{}, false
}

// ZoneByID looks up a delivery zone.
func (c *Catalog) ZoneByID(id string) (models.DeliveryZone, bool) {
	for _, z := range c.zones {
		if z.ID == id {
			return z, true
		}
	}
	return models.DeliveryZone{}, false
}

// productFile mirrors products.json, where prices are in reais.
type productFile struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	Description string  `json:"description"`
	Badge       string  `json:"badge"`
}

// promotionsFile mirrors promotions.json.
type promotionsFile struct {
	Bundles []struct {
		ID        string             `json:"id"`
		Name      string             `json:"name"`
		Price     float64            `json:"price"`
		Image     string             `json:"image"`
		Items     []models.BundleItem `json:"items"`
		Tags      []string           `json:"tags"`
		Available bool               `json:"available"`
	} `json:"bundles"`
}

// Load reads products.json and promotions.json from dataDir, converting
// prices to cents at this boundary, and returns the assembled catalog.
func Load(dataDir string, zones []models.DeliveryZone) (*Catalog, error) {
	productsPath := filepath.Join(dataDir, "products.json")
	raw, err := os.ReadFile(productsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read products %s: %w", productsPath, err)
	}

	var files []productFile
	if err := json.Unmarshal(raw, &files); err != nil {
		return nil, fmt.Errorf("failed to parse products %s: %w", productsPath, err)
	}

	products := make([]models.Product, 0, len(files))
	for _, f := range files {
		if f.ID == "" {
			return nil, fmt.Errorf("products %s: product with empty id", productsPath)
		}
		products = append(products, models.Product{
			ID:          f.ID,
			Name:        f.Name,
			PriceCents:  utils.CentsFromReais(f.Price),
			Unit:        f.Unit,
			Category:    f.Category,
			ImageURL:    f.ImageURL,
			Description: f.Description,
			Badge:       f.Badge,
		})
	}

	promotionsPath := filepath.Join(dataDir, "promotions.json")
	raw, err = os.ReadFile(promotionsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read promotions %s: %w", promotionsPath, err)
	}

	var promos promotionsFile
	if err := json.Unmarshal(raw, &promos); err != nil {
		return nil, fmt.Errorf("failed to parse promotions %s: %w", promotionsPath, err)
	}

	bundles := make([]models.Bundle, 0, len(promos.Bundles))
	for _, b := range promos.Bundles {
		if b.ID == "" {
			return nil, fmt.Errorf("promotions %s: bundle with empty id", promotionsPath)
		}
		bundles = append(bundles, models.Bundle{
			ID:         b.ID,
			Name:       b.Name,
			PriceCents: utils.CentsFromReais(b.Price),
			Image:      b.Image,
			Items:      b.Items,
			Tags:       b.Tags,
			Available:  b.Available,
		})
	}

	return New(products, bundles, zones), nil
}
