package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quitute-doce-desejo/models"
)

func newTestContactController() *ContactController {
	return NewContactController(testStoreConfig())
}

func TestGetGreetingLinkUsesCannedGreeting(t *testing.T) {
	c := newTestContactController()

	req := httptest.NewRequest(http.MethodGet, "/contact-link", nil)
	rec := httptest.NewRecorder()
	c.GetGreetingLink(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ContactLinkResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.True(t, strings.HasPrefix(resp.URL, "https://wa.me/553399960552?text="))

	encoded := strings.TrimPrefix(resp.URL, "https://wa.me/553399960552?text=")
	decoded, err := url.QueryUnescape(encoded)
	require.NoError(t, err)
	assert.Equal(t, "Olá! Vim pelo site 😊", decoded)
}

func TestBuildContactLinkRendersMessage(t *testing.T) {
	c := newTestContactController()

	body := `{"name":"Maria","subject":"Encomenda","phone":"(33) 98888-7777","message":"Quero um bolo de festa"}`
	req := httptest.NewRequest(http.MethodPost, "/contact-link", strings.NewReader(body))
	rec := httptest.NewRecorder()
	c.BuildContactLink(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.ContactLinkResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	encoded := strings.TrimPrefix(resp.URL, "https://wa.me/553399960552?text=")
	decoded, err := url.QueryUnescape(encoded)
	require.NoError(t, err)

	assert.Contains(t, decoded, "Olá, *Quitute Doce Desejo*!")
	assert.Contains(t, decoded, "Meu nome é *Maria*.")
	assert.Contains(t, decoded, "Assunto: Encomenda")
	assert.Contains(t, decoded, "Telefone: (33) 98888-7777")
	assert.Contains(t, decoded, "Quero um bolo de festa")
	assert.NotContains(t, decoded, "E-mail:")
}

func TestBuildContactLinkValidation(t *testing.T) {
	c := newTestContactController()

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"message":"Oi"}`},
		{"missing message", `{"name":"Maria"}`},
		{"blank name", `{"name":"   ","message":"Oi"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/contact-link", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			c.BuildContactLink(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
