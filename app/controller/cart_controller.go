package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"quitute-doce-desejo/cart"
	"quitute-doce-desejo/catalog"
	"quitute-doce-desejo/config"
	"quitute-doce-desejo/models"
	"quitute-doce-desejo/whatsapp"
)

// CartController handles HTTP requests for session carts
type CartController struct {
	store   *cart.SessionStore
	catalog *catalog.Catalog
	config  *config.StoreConfig
}

// NewCartController creates a new CartController
func NewCartController(store *cart.SessionStore, cat *catalog.Catalog, cfg *config.StoreConfig) *CartController {
	return &CartController{
		store:   store,
		catalog: cat,
		config:  cfg,
	}
}

// cartView assembles the full cart response: lines, selection and totals.
func cartView(id string, cc *cart.Cart) models.CartResponse {
	return models.CartResponse{
		ID:            id,
		Items:         cc.Lines(),
		Selection:     cc.Selection(),
		SubtotalCents: cc.SubtotalCents(),
		DeliveryCents: cc.DeliveryFeeCents(),
		TotalCents:    cc.TotalCents(),
	}
}

// writeCartError maps cart operation errors to status codes
func writeCartError(w http.ResponseWriter, operation string, err error) {
	log.Printf("❌ %s: %v", operation, err)
	if strings.Contains(err.Error(), "not found") {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusBadRequest)
}

// CreateCart handles POST /carts
// Creates an empty session cart and returns its id.
func (c *CartController) CreateCart(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateCart: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ CreateCart: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := c.store.Create()

	log.Printf("✅ CreateCart: Created cart %s", id)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(models.CreateCartResponse{ID: id}); err != nil {
		log.Printf("❌ CreateCart: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// GetCart handles GET /carts/:id
func (c *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetCart: Received %s request to %s", r.Method, r.URL.Path)

	id := strings.TrimPrefix(r.URL.Path, "/carts/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Invalid cart id", http.StatusBadRequest)
		return
	}

	var response models.CartResponse
	err := c.store.Do(id, func(cc *cart.Cart) error {
		response = cartView(id, cc)
		return nil
	})
	if err != nil {
		writeCartError(w, "GetCart", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ GetCart: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ClearCart handles DELETE /carts/:id
// Empties the cart and resets the checkout selection to its defaults.
func (c *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ClearCart: Received %s request to %s", r.Method, r.URL.Path)

	id := strings.TrimPrefix(r.URL.Path, "/carts/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Invalid cart id", http.StatusBadRequest)
		return
	}

	err := c.store.Do(id, func(cc *cart.Cart) error {
		cc.Clear()
		return nil
	})
	if err != nil {
		writeCartError(w, "ClearCart", err)
		return
	}

	log.Printf("✅ ClearCart: Cleared cart %s", id)
	w.WriteHeader(http.StatusNoContent)
}

// AddItem handles POST /carts/:id/items
// Adds a product or bundle line to the cart. Adding an id already in the
// cart increments its quantity.
func (c *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 AddItem: Received %s request to %s", r.Method, r.URL.Path)

	path := strings.TrimPrefix(r.URL.Path, "/carts/")
	id := strings.TrimSuffix(path, "/items")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Invalid cart id", http.StatusBadRequest)
		return
	}

	var req models.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ AddItem: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if (req.ProductID == "") == (req.BundleID == "") {
		log.Printf("❌ AddItem: Exactly one of productId/bundleId required")
		http.Error(w, "Exactly one of productId or bundleId must be set", http.StatusBadRequest)
		return
	}

	var response models.CartResponse
	err := c.store.Do(id, func(cc *cart.Cart) error {
		if req.ProductID != "" {
			product, ok := c.catalog.ProductByID(req.ProductID)
			if !ok {
				return fmt.Errorf("product %s not found", req.ProductID)
			}
			cc.AddItem(product.ID, product.Name, product.PriceCents, req.Qty)
		} else {
			bundle, ok := c.catalog.BundleByID(req.BundleID)
			if !ok {
				return fmt.Errorf("bundle %s not found", req.BundleID)
			}
			if !bundle.Available {
				return fmt.Errorf("bundle %s is not available", req.BundleID)
			}
			cc.AddItem(bundle.ID, bundle.Name, bundle.PriceCents, req.Qty)
		}
		response = cartView(id, cc)
		return nil
	})
	if err != nil {
		writeCartError(w, "AddItem", err)
		return
	}

	log.Printf("✅ AddItem: Added item to cart %s (%d lines)", id, len(response.Items))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ AddItem: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// UpdateItem handles PUT /carts/:cartId/items/:itemId
// Sets the quantity of a line, clamped to a minimum of 1. An itemId that is
// not in the cart is a no-op.
func (c *CartController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UpdateItem: Received %s request to %s", r.Method, r.URL.Path)

	cartID, itemID, ok := splitItemPath(r.URL.Path)
	if !ok {
		http.Error(w, "Invalid cart item path", http.StatusBadRequest)
		return
	}

	var req models.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateItem: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	var response models.CartResponse
	err := c.store.Do(cartID, func(cc *cart.Cart) error {
		cc.SetQuantity(itemID, req.Qty)
		response = cartView(cartID, cc)
		return nil
	})
	if err != nil {
		writeCartError(w, "UpdateItem", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ UpdateItem: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// RemoveItem handles DELETE /carts/:cartId/items/:itemId
// Removing an absent item is a no-op; the response is 204 either way.
func (c *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 RemoveItem: Received %s request to %s", r.Method, r.URL.Path)

	cartID, itemID, ok := splitItemPath(r.URL.Path)
	if !ok {
		http.Error(w, "Invalid cart item path", http.StatusBadRequest)
		return
	}

	err := c.store.Do(cartID, func(cc *cart.Cart) error {
		cc.RemoveItem(itemID)
		return nil
	})
	if err != nil {
		writeCartError(w, "RemoveItem", err)
		return
	}

	log.Printf("✅ RemoveItem: Removed %s from cart %s", itemID, cartID)
	w.WriteHeader(http.StatusNoContent)
}

// splitItemPath parses /carts/:cartId/items/:itemId
func splitItemPath(path string) (cartID, itemID string, ok bool) {
	path = strings.TrimPrefix(path, "/carts/")
	parts := strings.Split(path, "/")
	if len(parts) != 3 || parts[1] != "items" || parts[0] == "" || parts[2] == "" {
		return "", "", false
	}
	return parts[0], parts[2], true
}

// SetCheckoutSelection handles PUT /carts/:id/checkout
// Replaces the cart's delivery/payment selection. The zone is resolved
// against the configured zone table; an empty zoneId clears it.
func (c *CartController) SetCheckoutSelection(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 SetCheckoutSelection: Received %s request to %s", r.Method, r.URL.Path)

	path := strings.TrimPrefix(r.URL.Path, "/carts/")
	id := strings.TrimSuffix(path, "/checkout")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Invalid cart id", http.StatusBadRequest)
		return
	}

	var req models.CheckoutSelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ SetCheckoutSelection: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.Fulfillment != models.FulfillmentDelivery && req.Fulfillment != models.FulfillmentPickup {
		log.Printf("❌ SetCheckoutSelection: Invalid fulfillment: %s", req.Fulfillment)
		http.Error(w, "fulfillment must be entrega or retirada", http.StatusBadRequest)
		return
	}

	switch req.PaymentMethod {
	case models.PaymentPix, models.PaymentCredit, models.PaymentDebit, models.PaymentCash:
	default:
		log.Printf("❌ SetCheckoutSelection: Invalid payment method: %s", req.PaymentMethod)
		http.Error(w, "paymentMethod must be pix, credito, debito or dinheiro", http.StatusBadRequest)
		return
	}

	var response models.CartResponse
	err := c.store.Do(id, func(cc *cart.Cart) error {
		cc.SetSelection(models.CheckoutSelection{
			CustomerName:   strings.TrimSpace(req.CustomerName),
			Fulfillment:    req.Fulfillment,
			PaymentMethod:  req.PaymentMethod,
			ChangeForCents: req.ChangeForCents,
			Note:           req.Note,
			Address:        req.Address,
		})
		if req.ZoneID == "" {
			cc.ClearZone()
		} else {
			zone, ok := c.catalog.ZoneByID(req.ZoneID)
			if !ok {
				return fmt.Errorf("delivery zone %s not found", req.ZoneID)
			}
			cc.SetZone(zone)
		}
		response = cartView(id, cc)
		return nil
	})
	if err != nil {
		writeCartError(w, "SetCheckoutSelection", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ SetCheckoutSelection: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// Checkout handles POST /carts/:id/checkout
// Validates the cart, renders the order message and returns it together
// with the wa.me deep link. With clearCart the cart is emptied after the
// message is built.
func (c *CartController) Checkout(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Checkout: Received %s request to %s", r.Method, r.URL.Path)

	path := strings.TrimPrefix(r.URL.Path, "/carts/")
	id := strings.TrimSuffix(path, "/checkout")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Invalid cart id", http.StatusBadRequest)
		return
	}

	// Body is optional; an empty body means clearCart=false
	var req models.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		log.Printf("❌ Checkout: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	var response models.CheckoutResponse
	err := c.store.Do(id, func(cc *cart.Cart) error {
		if cc.Len() == 0 {
			return fmt.Errorf("cart is empty")
		}

		sel := cc.Selection()
		if strings.TrimSpace(sel.CustomerName) == "" {
			return fmt.Errorf("customerName is required")
		}
		if sel.Fulfillment == models.FulfillmentDelivery {
			if strings.TrimSpace(sel.Address.Street) == "" {
				return fmt.Errorf("delivery address street is required")
			}
			if sel.ZoneID == "" {
				return fmt.Errorf("delivery zone is required")
			}
		}

		items := make([]whatsapp.Item, 0, cc.Len())
		for _, line := range cc.Lines() {
			items = append(items, whatsapp.Item{
				Name:           line.Name,
				Qty:            line.Qty,
				UnitPriceCents: line.UnitPriceCents,
			})
		}

		opts := whatsapp.OrderOptions{
			StoreName:    c.config.Name,
			CustomerName: sel.CustomerName,
			Fulfillment:  sel.Fulfillment,
			Payment: whatsapp.Payment{
				Method:         sel.PaymentMethod,
				ChangeForCents: sel.ChangeForCents,
			},
			DeliveryFeeCents: cc.DeliveryFeeCents(),
			Note:             sel.Note,
		}
		if sel.Fulfillment == models.FulfillmentDelivery {
			opts.Address = &whatsapp.Address{
				Street:     sel.Address.Street,
				Number:     sel.Address.Number,
				Complement: sel.Address.Complement,
				District:   sel.ZoneName,
				City:       sel.Address.City,
				State:      sel.Address.State,
			}
		} else {
			opts.Pickup = &whatsapp.Pickup{
				Street:    c.config.Address.Street,
				District:  c.config.Address.District,
				City:      c.config.Address.City,
				State:     c.config.Address.State,
				Zip:       c.config.Address.Zip,
				Reference: c.config.Address.Reference,
				MapURL:    c.config.Address.MapURL,
			}
		}

		message := whatsapp.BuildOrderMessage(items, opts)
		response = models.CheckoutResponse{
			URL:     whatsapp.BuildLink(c.config.WhatsApp, message),
			Message: message,
		}

		if req.ClearCart {
			cc.Clear()
		}
		return nil
	})
	if err != nil {
		writeCartError(w, "Checkout", err)
		return
	}

	log.Printf("✅ Checkout: Built order link for cart %s", id)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ Checkout: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
