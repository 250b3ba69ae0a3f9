package controller

import (
	"encoding/json"
	"log"
	"net/http"

	"quitute-doce-desejo/config"
)

// StoreController handles HTTP requests for the store identity
type StoreController struct {
	config *config.StoreConfig
}

// NewStoreController creates a new StoreController
func NewStoreController(cfg *config.StoreConfig) *StoreController {
	return &StoreController{
		config: cfg,
	}
}

// GetStore handles GET /store
// Returns the public store identity: name, contacts, address, colors,
// canned messages and the delivery-zone table.
func (c *StoreController) GetStore(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetStore: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ GetStore: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(c.config); err != nil {
		log.Printf("❌ GetStore: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
