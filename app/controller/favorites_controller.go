package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"quitute-doce-desejo/favorites"
	"quitute-doce-desejo/models"
)

// FavoritesController handles HTTP requests for per-client favorites
type FavoritesController struct {
	service *favorites.Service
}

// NewFavoritesController creates a new FavoritesController
func NewFavoritesController(svc *favorites.Service) *FavoritesController {
	return &FavoritesController{
		service: svc,
	}
}

// ListFavorites handles GET /favorites?clientId=
// A missing clientId is not an error: the client simply has no favorites
// yet, so an empty set comes back.
func (c *FavoritesController) ListFavorites(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListFavorites: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ ListFavorites: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	clientID := strings.TrimSpace(r.URL.Query().Get("clientId"))

	response := models.FavoritesResponse{
		ClientID:  clientID,
		Favorites: []string{},
	}
	if clientID != "" {
		response.Favorites = c.service.List(context.Background(), clientID)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ ListFavorites: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ToggleFavorite handles POST /favorites/toggle
// Adds or removes a product from the client's favorites set. When the
// request carries no clientId the server issues one and echoes it back, so
// the client can keep it for subsequent calls.
func (c *FavoritesController) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ToggleFavorite: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ ToggleFavorite: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.ToggleFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ ToggleFavorite: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.ProductID) == "" {
		log.Printf("❌ ToggleFavorite: productId cannot be empty")
		http.Error(w, "productId cannot be empty", http.StatusBadRequest)
		return
	}

	clientID := strings.TrimSpace(req.ClientID)
	if clientID == "" {
		clientID = uuid.NewString()
		log.Printf("🆕 ToggleFavorite: Issued client id %s", clientID)
	}

	ids := c.service.Toggle(context.Background(), clientID, req.ProductID, req.Favorite)

	log.Printf("✅ ToggleFavorite: Client %s now has %d favorites", clientID, len(ids))

	response := models.FavoritesResponse{
		ClientID:  clientID,
		Favorites: ids,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ ToggleFavorite: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
