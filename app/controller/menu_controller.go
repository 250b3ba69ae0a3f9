package controller

import (
	"log"
	"net/http"

	"quitute-doce-desejo/service"
)

// MenuController handles HTTP requests for the printable menu
type MenuController struct {
	menu *service.MenuService
}

// NewMenuController creates a new MenuController
func NewMenuController(menu *service.MenuService) *MenuController {
	return &MenuController{
		menu: menu,
	}
}

// RenderMenu handles GET /catalog/menu/render
// Serves the menu as an HTML page. The PDF export prints this same page
// through headless Chrome.
func (c *MenuController) RenderMenu(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 RenderMenu: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ RenderMenu: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	html, err := c.menu.RenderHTML()
	if err != nil {
		log.Printf("❌ RenderMenu: Failed to render menu: %v", err)
		http.Error(w, "Failed to render menu", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// GetMenuPDF handles GET /catalog/menu.pdf
func (c *MenuController) GetMenuPDF(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetMenuPDF: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ GetMenuPDF: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	log.Printf("🔄 GetMenuPDF: Generating menu PDF")

	pdfData, err := c.menu.GeneratePDF(r.Context())
	if err != nil {
		log.Printf("❌ GetMenuPDF: Failed to generate PDF: %v", err)
		http.Error(w, "Failed to generate menu PDF", http.StatusInternalServerError)
		return
	}

	log.Printf("✅ GetMenuPDF: Generated menu PDF (%d bytes)", len(pdfData))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="cardapio.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(pdfData)
}
