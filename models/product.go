package models

// Product represents a sellable catalog product.
// Prices are stored in cents (BRL centavos); the data files carry reais and
// are converted once at load time.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PriceCents  int64  `json:"priceCents"`
	Unit        string `json:"unit"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description,omitempty"`
	Badge       string `json:"badge,omitempty"`
}

// BundleItem is one product line inside a bundle offer.
type BundleItem struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// Bundle represents a fixed-price combo offer composed of catalog products.
type Bundle struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	PriceCents int64        `json:"priceCents"`
	Image      string       `json:"image"`
	Items      []BundleItem `json:"items"`
	Tags       []string     `json:"tags,omitempty"`
	Available  bool         `json:"available"`
}

// DeliveryZone is a named delivery area (bairro) with a flat fee.
type DeliveryZone struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	FeeCents int64  `json:"feeCents"`
}

// ProductListResponse is the response for GET /catalog/products
type ProductListResponse struct {
	Products []Product `json:"products"`
}

// BundleListResponse is the response for GET /catalog/bundles
type BundleListResponse struct {
	Bundles []Bundle `json:"bundles"`
}

// ZoneListResponse is the response for GET /catalog/zones
type ZoneListResponse struct {
	Zones []DeliveryZone `json:"zones"`
}

// ProductPhoto describes a product photo found in the Drive photos folder.
// The product id is derived from the file name stem.
type ProductPhoto struct {
	ProductID   string `json:"productId"`
	DriveFileID string `json:"driveFileId"`
	FileName    string `json:"fileName"`
	ImageURL    string `json:"imageUrl"`
}
