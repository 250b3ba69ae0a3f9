package router

import (
	"net/http"
	"strings"

	"quitute-doce-desejo/app/controller"
)

type Controllers struct {
	Store     *controller.StoreController
	Catalog   *controller.CatalogController
	Cart      *controller.CartController
	Favorites *controller.FavoritesController
	Contact   *controller.ContactController
	Menu      *controller.MenuController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Store identity
	http.HandleFunc("/store", controllers.Store.GetStore)

	// Catalog routes
	http.HandleFunc("/catalog/products", controllers.Catalog.ListProducts)
	http.HandleFunc("/catalog/bundles", controllers.Catalog.ListBundles)
	http.HandleFunc("/catalog/zones", controllers.Catalog.ListZones)

	// Printable menu (PDF + the HTML page Chrome prints)
	http.HandleFunc("/catalog/menu.pdf", controllers.Menu.GetMenuPDF)
	http.HandleFunc("/catalog/menu/render", controllers.Menu.RenderMenu)

	// Optimized product image
	http.HandleFunc("/catalog/products/", func(w http.ResponseWriter, r *http.Request) {
		// Check if this is the image endpoint
		if strings.HasSuffix(r.URL.Path, "/image") {
			controllers.Catalog.GetProductImage(w, r)
			return
		}
		// Otherwise, return 404
		http.Error(w, "Not found", http.StatusNotFound)
	})

	// Admin: sync product photos from Drive
	http.HandleFunc("/admin/photos/sync", controllers.Catalog.SyncPhotos)

	// Cart routes
	// Create cart
	http.HandleFunc("/carts", controllers.Cart.CreateCart)

	// Cart actions (must route the specific suffixes before the generic /:id)
	http.HandleFunc("/carts/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/carts/")

		// Handle PUT/POST /carts/:id/checkout
		if strings.HasSuffix(path, "/checkout") {
			if r.Method == http.MethodPut {
				controllers.Cart.SetCheckoutSelection(w, r)
			} else if r.Method == http.MethodPost {
				controllers.Cart.Checkout(w, r)
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}
		// Handle PUT /carts/:cartId/items/:itemId
		if strings.Contains(path, "/items/") && r.Method == http.MethodPut {
			controllers.Cart.UpdateItem(w, r)
			return
		}
		// Handle DELETE /carts/:cartId/items/:itemId
		if strings.Contains(path, "/items/") && r.Method == http.MethodDelete {
			controllers.Cart.RemoveItem(w, r)
			return
		}
		// Handle POST /carts/:id/items
		if strings.HasSuffix(path, "/items") && r.Method == http.MethodPost {
			controllers.Cart.AddItem(w, r)
			return
		}

		// Handle DELETE /carts/:id (clear)
		if r.Method == http.MethodDelete && !strings.Contains(path, "/") {
			controllers.Cart.ClearCart(w, r)
			return
		}

		// Otherwise, treat as GET /carts/:id
		if r.Method == http.MethodGet {
			controllers.Cart.GetCart(w, r)
			return
		}

		// Method not allowed
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	// Favorites routes
	http.HandleFunc("/favorites", controllers.Favorites.ListFavorites)
	http.HandleFunc("/favorites/toggle", controllers.Favorites.ToggleFavorite)

	// Contact link - GET returns the canned greeting link, POST renders a form
	http.HandleFunc("/contact-link", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Contact.GetGreetingLink(w, r)
		} else if r.Method == http.MethodPost {
			controllers.Contact.BuildContactLink(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
}
