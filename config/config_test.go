package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStoreFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "store.json"), []byte(content), 0644)
	require.NoError(t, err)
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeStoreFile(t, `{
		"name": "Quitute Doce Desejo",
		"slogan": "Carinho em cada pedaço",
		"whatsapp": "553399960552",
		"address": {"street": "Rua A, 1", "district": "Centro", "city": "Caratinga", "state": "MG", "zip": "35300-120"},
		"deliveryZones": [
			{"id": "limoeiro", "name": "Limoeiro", "fee": 8},
			{"id": "seminario", "name": "Seminário", "fee": 12.5}
		]
	}`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "Quitute Doce Desejo", cfg.Name)
	assert.Equal(t, "553399960552", cfg.WhatsApp)
	assert.Equal(t, "Caratinga", cfg.Address.City)

	require.Len(t, cfg.DeliveryZones, 2)
	assert.Equal(t, int64(800), cfg.DeliveryZones[0].FeeCents)
	assert.Equal(t, int64(1250), cfg.DeliveryZones[1].FeeCents)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestLoadRejectsEmptyName(t *testing.T) {
	dir := writeStoreFile(t, `{"name": "  ", "deliveryZones": []}`)
	_, err := Load(dir)
	assert.ErrorContains(t, err, "name cannot be empty")
}

func TestLoadRejectsBlankZoneID(t *testing.T) {
	dir := writeStoreFile(t, `{"name": "Loja", "deliveryZones": [{"id": " ", "name": "X", "fee": 5}]}`)
	_, err := Load(dir)
	assert.ErrorContains(t, err, "empty id")
}

func TestLoadRejectsNegativeFee(t *testing.T) {
	dir := writeStoreFile(t, `{"name": "Loja", "deliveryZones": [{"id": "x", "name": "X", "fee": -1}]}`)
	_, err := Load(dir)
	assert.ErrorContains(t, err, "negative fee")
}
