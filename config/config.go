// Package config loads the static store configuration: identity, contact
// channels, the pickup address and the delivery-zone table. The data is
// supplied as a JSON file per deployment, not fetched from any service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quitute-doce-desejo/models"
	"quitute-doce-desejo/utils"
)

// StoreAddress is the business's own address, shown on pickup orders.
type StoreAddress struct {
	Street    string `json:"street"`
	Reference string `json:"reference,omitempty"`
	District  string `json:"district"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	MapURL    string `json:"mapUrl"`
}

// StoreColors is the color theme exposed to the front-end.
type StoreColors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent,omitempty"`
	Background string `json:"background,omitempty"`
}

// StoreMessages holds the canned message prefixes.
type StoreMessages struct {
	Greeting      string `json:"greeting"`
	OrderPrefix   string `json:"orderPrefix,omitempty"`
	ContactPrefix string `json:"contactPrefix,omitempty"`
}

// StoreConfig is the store identity plus the delivery-zone table.
// WhatsApp is the destination contact number; it may carry formatting
// characters, the link builder strips it to digits.
type StoreConfig struct {
	Name          string                `json:"name"`
	Slogan        string                `json:"slogan"`
	WhatsApp      string                `json:"whatsapp"`
	Email         string                `json:"email"`
	PhoneDisplay  string                `json:"phoneDisplay"`
	Instagram     string                `json:"instagram"`
	Facebook      string                `json:"facebook"`
	Address       StoreAddress          `json:"address"`
	Colors        StoreColors           `json:"colors"`
	Messages      StoreMessages         `json:"messages"`
	DeliveryZones []models.DeliveryZone `json:"deliveryZones"`
}

// storeFile mirrors store.json, where zone fees are in reais.
type storeFile struct {
	Name          string        `json:"name"`
	Slogan        string        `json:"slogan"`
	WhatsApp      string        `json:"whatsapp"`
	Email         string        `json:"email"`
	PhoneDisplay  string        `json:"phoneDisplay"`
	Instagram     string        `json:"instagram"`
	Facebook      string        `json:"facebook"`
	Address       StoreAddress  `json:"address"`
	Colors        StoreColors   `json:"colors"`
	Messages      StoreMessages `json:"messages"`
	DeliveryZones []struct {
		ID   string  `json:"id"`
		Name string  `json:"name"`
		Fee  float64 `json:"fee"`
	} `json:"deliveryZones"`
}

// Load reads store.json from dataDir and converts monetary fields to
// cents. Zones with a blank id are rejected so lookups stay unambiguous.
func Load(dataDir string) (*StoreConfig, error) {
	path := filepath.Join(dataDir, "store.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read store config %s: %w", path, err)
	}

	var file storeFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse store config %s: %w", path, err)
	}

	if strings.TrimSpace(file.Name) == "" {
		return nil, fmt.Errorf("store config %s: name cannot be empty", path)
	}

	cfg := &StoreConfig{
		Name:         file.Name,
		Slogan:       file.Slogan,
		WhatsApp:     file.WhatsApp,
		Email:        file.Email,
		PhoneDisplay: file.PhoneDisplay,
		Instagram:    file.Instagram,
		Facebook:     file.Facebook,
		Address:      file.Address,
		Colors:       file.Colors,
		Messages:     file.Messages,
	}

	for _, z := range file.DeliveryZones {
		if strings.TrimSpace(z.ID) == "" {
			return nil, fmt.Errorf("store config %s: delivery zone with empty id", path)
		}
		if z.Fee < 0 {
			return nil, fmt.Errorf("store config %s: zone %s has negative fee", path, z.ID)
		}
		cfg.DeliveryZones = append(cfg.DeliveryZones, models.DeliveryZone{
			ID:       z.ID,
			Name:     z.Name,
			FeeCents: utils.CentsFromReais(z.Fee),
		})
	}

	return cfg, nil
}

// DataDir resolves the data directory from the STORE_DATA_DIR environment
// variable, defaulting to "data".
func DataDir() string {
	if dir := os.Getenv("STORE_DATA_DIR"); dir != "" {
		return dir
	}
	return "data"
}
