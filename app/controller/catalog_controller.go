package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"

	"quitute-doce-desejo/catalog"
	"quitute-doce-desejo/models"
	"quitute-doce-desejo/service"
)

// CatalogController handles HTTP requests for the product catalog
type CatalogController struct {
	catalog   *catalog.Catalog
	photoSync *service.PhotoSyncService // nil when Drive sync is not configured
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(cat *catalog.Catalog, photoSync *service.PhotoSyncService) *CatalogController {
	return &CatalogController{
		catalog:   cat,
		photoSync: photoSync,
	}
}

// ListProducts handles GET /catalog/products
// Returns every orderable product. Products without a positive price are
// filtered at load time and never appear here.
func (c *CatalogController) ListProducts(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListProducts: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ ListProducts: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := models.ProductListResponse{Products: c.catalog.ListProducts()}

	log.Printf("✅ ListProducts: Returning %d products", len(response.Products))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ ListProducts: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListBundles handles GET /catalog/bundles
func (c *CatalogController) ListBundles(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListBundles: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ ListBundles: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := models.BundleListResponse{Bundles: c.catalog.ListBundles()}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ ListBundles: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListZones handles GET /catalog/zones
func (c *CatalogController) ListZones(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListZones: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ ListZones: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := models.ZoneListResponse{Zones: c.catalog.ListZones()}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ ListZones: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// GetProductImage handles GET /catalog/products/:id/image?size=thumb|medium
// Serves an optimized JPEG from the cache, generating it from the synced
// local photo on a cache miss.
func (c *CatalogController) GetProductImage(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetProductImage: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ GetProductImage: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Extract product id from /catalog/products/:id/image
	path := strings.TrimPrefix(r.URL.Path, "/catalog/products/")
	productID := strings.TrimSuffix(path, "/image")
	if productID == "" || strings.Contains(productID, "/") {
		log.Printf("❌ GetProductImage: Invalid path: %s", r.URL.Path)
		http.Error(w, "Invalid product image path", http.StatusBadRequest)
		return
	}

	if _, ok := c.catalog.ProductByID(productID); !ok {
		log.Printf("❌ GetProductImage: Product not found: %s", productID)
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	size := r.URL.Query().Get("size")
	if size == "" {
		size = "medium"
	}
	if size != "thumb" && size != "medium" {
		log.Printf("❌ GetProductImage: Invalid size: %s", size)
		http.Error(w, "size must be thumb or medium", http.StatusBadRequest)
		return
	}

	// Serve from cache when the variant already exists
	cachePath := service.GetCachePath(productID, size)
	if service.CacheExists(cachePath) {
		imageData, err := service.ReadFromCache(cachePath)
		if err == nil {
			log.Printf("✅ GetProductImage: Serving %s/%s from cache", productID, size)
			w.Header().Set("Content-Type", "image/jpeg")
			w.Header().Set("Cache-Control", "public, max-age=86400")
			w.WriteHeader(http.StatusOK)
			w.Write(imageData)
			return
		}
		log.Printf("⚠️ GetProductImage: Failed to read cache for %s/%s: %v", productID, size, err)
	}

	if c.photoSync == nil {
		log.Printf("❌ GetProductImage: No photo source configured for %s", productID)
		http.Error(w, "Product image not available", http.StatusNotFound)
		return
	}

	localPath := c.photoSync.LocalPhotoPath(productID)
	imageData, err := os.ReadFile(localPath)
	if err != nil {
		log.Printf("❌ GetProductImage: No local photo for %s: %v", productID, err)
		http.Error(w, "Product image not found", http.StatusNotFound)
		return
	}

	optimized, err := service.OptimizeImage(imageData, size)
	if err != nil {
		log.Printf("❌ GetProductImage: Failed to optimize image for %s: %v", productID, err)
		http.Error(w, "Failed to process image", http.StatusInternalServerError)
		return
	}

	if err := service.SaveToCache(cachePath, optimized); err != nil {
		log.Printf("⚠️ GetProductImage: Failed to cache image for %s/%s: %v", productID, size, err)
	}

	log.Printf("✅ GetProductImage: Generated %s variant for %s (%d bytes)", size, productID, len(optimized))

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(optimized)
}

// SyncPhotos handles POST /admin/photos/sync
// Downloads product photos from the configured Drive folder into the local
// photo directory, skipping files that already exist.
func (c *CatalogController) SyncPhotos(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 SyncPhotos: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ SyncPhotos: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if c.photoSync == nil {
		log.Printf("❌ SyncPhotos: Drive photo sync is not configured")
		http.Error(w, "Photo sync is not configured", http.StatusServiceUnavailable)
		return
	}

	folderID := os.Getenv("DRIVE_PHOTOS_FOLDER_ID")
	if folderID == "" {
		log.Printf("❌ SyncPhotos: DRIVE_PHOTOS_FOLDER_ID is not set")
		http.Error(w, "DRIVE_PHOTOS_FOLDER_ID is not set", http.StatusServiceUnavailable)
		return
	}

	total, downloaded, skipped, errs, err := c.photoSync.SyncPhotos(folderID)
	if err != nil {
		log.Printf("❌ SyncPhotos: Sync failed: %v", err)
		http.Error(w, "Failed to sync photos", http.StatusInternalServerError)
		return
	}

	log.Printf("✅ SyncPhotos: Sync complete - total=%d, downloaded=%d, skipped=%d, errors=%d", total, downloaded, skipped, len(errs))

	response := struct {
		Total      int      `json:"total"`
		Downloaded int      `json:"downloaded"`
		Skipped    int      `json:"skipped"`
		Errors     []string `json:"errors,omitempty"`
	}{
		Total:      total,
		Downloaded: downloaded,
		Skipped:    skipped,
		Errors:     errs,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ SyncPhotos: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
