package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"quitute-doce-desejo/catalog"
	"quitute-doce-desejo/config"
	"quitute-doce-desejo/utils"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// MenuService renders the product catalog as a printable menu: an HTML
// page served by the app, and a PDF printed from it with headless Chrome.
type MenuService struct {
	catalog *catalog.Catalog
	store   *config.StoreConfig
	baseURL string // Base URL the render endpoint is reachable at (e.g. "http://localhost:8080")
}

// NewMenuService creates a new MenuService
func NewMenuService(cat *catalog.Catalog, store *config.StoreConfig, baseURL string) *MenuService {
	return &MenuService{
		catalog: cat,
		store:   store,
		baseURL: baseURL,
	}
}

// detectChromePath detects the path to the Chrome/Chromium executable.
// Checks CHROME_PATH first, then common installation paths.
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

type menuProduct struct {
	Name        string
	Description string
	Unit        string
	Badge       string
	Price       string
}

type menuCategory struct {
	Name     string
	Products []menuProduct
}

type menuBundle struct {
	Name      string
	Price     string
	Available bool
}

// RenderHTML renders the menu page from the catalog and store identity.
func (s *MenuService) RenderHTML() (string, error) {
	var categories []menuCategory
	index := map[string]int{}

	for _, p := range s.catalog.ListProducts() {
		i, ok := index[p.Category]
		if !ok {
			i = len(categories)
			index[p.Category] = i
			categories = append(categories, menuCategory{Name: p.Category})
		}
		categories[i].Products = append(categories[i].Products, menuProduct{
			Name:        p.Name,
			Description: p.Description,
			Unit:        p.Unit,
			Badge:       p.Badge,
			Price:       utils.FormatBRL(p.PriceCents),
		})
	}

	var bundles []menuBundle
	for _, b := range s.catalog.ListBundles() {
		bundles = append(bundles, menuBundle{
			Name:      b.Name,
			Price:     utils.FormatBRL(b.PriceCents),
			Available: b.Available,
		})
	}

	templateData := struct {
		Store      *config.StoreConfig
		Categories []menuCategory
		Bundles    []menuBundle
	}{
		Store:      s.store,
		Categories: categories,
		Bundles:    bundles,
	}

	templatePath := filepath.Join("templates", "menu.html")
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// GeneratePDF prints the rendered menu page to an A4 PDF using chromedp.
func (s *MenuService) GeneratePDF(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	chromePath := detectChromePath()
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
		chromedp.Flag("enable-print-preview", true),
	)
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := fmt.Sprintf("%s/catalog/menu/render", s.baseURL)

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 1123), // A4 at 96 DPI
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(500*time.Millisecond), // settle fonts and layout
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).   // 210mm in inches
				WithPaperHeight(11.69). // 297mm in inches
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				Do(ctx)
			return err
		}),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}
