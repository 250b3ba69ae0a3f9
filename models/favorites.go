package models

// ToggleFavoriteRequest marks a product as favorite (or not) for a client.
// When clientId is empty the server issues one and echoes it back.
// Example: {"clientId": "b3c1…", "productId": "brigadeiro", "favorite": true}
type ToggleFavoriteRequest struct {
	ClientID  string `json:"clientId,omitempty"`
	ProductID string `json:"productId"`
	Favorite  bool   `json:"favorite"`
}

// FavoritesResponse is the favorites set for one client.
type FavoritesResponse struct {
	ClientID  string   `json:"clientId"`
	Favorites []string `json:"favorites"`
}
