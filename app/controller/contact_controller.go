package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"quitute-doce-desejo/config"
	"quitute-doce-desejo/models"
	"quitute-doce-desejo/whatsapp"
)

// ContactController handles HTTP requests for WhatsApp contact links
type ContactController struct {
	config *config.StoreConfig
}

// NewContactController creates a new ContactController
func NewContactController(cfg *config.StoreConfig) *ContactController {
	return &ContactController{
		config: cfg,
	}
}

// GetGreetingLink handles GET /contact-link
// Returns the wa.me link carrying the store's canned greeting, for the
// floating "fale conosco" button.
func (c *ContactController) GetGreetingLink(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetGreetingLink: Received %s request to %s", r.Method, r.URL.Path)

	response := models.ContactLinkResponse{
		URL: whatsapp.BuildLink(c.config.WhatsApp, c.config.Messages.Greeting),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ GetGreetingLink: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// BuildContactLink handles POST /contact-link
// Renders a contact-form submission into a message and returns the wa.me
// link that opens the conversation with it.
func (c *ContactController) BuildContactLink(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 BuildContactLink: Received %s request to %s", r.Method, r.URL.Path)

	var req models.ContactLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ BuildContactLink: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		log.Printf("❌ BuildContactLink: name cannot be empty")
		http.Error(w, "name cannot be empty", http.StatusBadRequest)
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		log.Printf("❌ BuildContactLink: message cannot be empty")
		http.Error(w, "message cannot be empty", http.StatusBadRequest)
		return
	}

	text := whatsapp.BuildContactMessage(c.config.Name, whatsapp.ContactPayload{
		Name:    name,
		Phone:   strings.TrimSpace(req.Phone),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Source:  strings.TrimSpace(req.Source),
		Message: message,
	})

	log.Printf("✅ BuildContactLink: Built contact link for %s", name)

	response := models.ContactLinkResponse{
		URL: whatsapp.BuildLink(c.config.WhatsApp, text),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ BuildContactLink: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
