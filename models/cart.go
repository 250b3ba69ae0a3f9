package models

// Fulfillment modes. Values follow the storefront wire format.
const (
	FulfillmentDelivery = "entrega"
	FulfillmentPickup   = "retirada"
)

// Payment methods accepted at checkout.
const (
	PaymentPix    = "pix"
	PaymentCredit = "credito"
	PaymentDebit  = "debito"
	PaymentCash   = "dinheiro"
)

// CartLine is a single line item in a cart. Identity is ID: adding the same
// id again increments Qty instead of appending a new line.
type CartLine struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Qty            int    `json:"qty"`
}

// DeliveryAddress is the client-entered address, used only under entrega.
// No required-field enforcement happens here; checkout validates.
type DeliveryAddress struct {
	Street     string `json:"street"`
	Number     string `json:"number,omitempty"`
	Complement string `json:"complement,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
}

// CheckoutSelection holds the delivery/payment choices attached to a cart.
type CheckoutSelection struct {
	CustomerName     string          `json:"customerName"`
	Fulfillment      string          `json:"fulfillment"`
	PaymentMethod    string          `json:"paymentMethod"`
	ChangeForCents   *int64          `json:"changeForCents,omitempty"`
	Note             string          `json:"note,omitempty"`
	Address          DeliveryAddress `json:"address"`
	ZoneID           string          `json:"zoneId,omitempty"`
	ZoneName         string          `json:"zoneName,omitempty"`
	DeliveryFeeCents int64           `json:"deliveryFeeCents"`
}

// CreateCartResponse is the response for POST /carts
type CreateCartResponse struct {
	ID string `json:"id"`
}

// AddCartItemRequest adds a product or bundle to a cart.
// Exactly one of productId/bundleId must be set. Qty defaults to 1.
// Example: {"productId": "brigadeiro", "qty": 3}
type AddCartItemRequest struct {
	ProductID string `json:"productId,omitempty"`
	BundleID  string `json:"bundleId,omitempty"`
	Qty       int    `json:"qty,omitempty"`
}

// UpdateCartItemRequest sets the quantity of a line item.
// Example: {"qty": 2}
type UpdateCartItemRequest struct {
	Qty int `json:"qty"`
}

// CheckoutSelectionRequest replaces a cart's checkout selection.
// Example: {"customerName": "Maria", "fulfillment": "entrega",
// "paymentMethod": "dinheiro", "changeForCents": 5000,
// "zoneId": "limoeiro", "address": {"street": "Rua A", "number": "10",
// "city": "Caratinga", "state": "MG"}}
type CheckoutSelectionRequest struct {
	CustomerName   string          `json:"customerName"`
	Fulfillment    string          `json:"fulfillment"`
	PaymentMethod  string          `json:"paymentMethod"`
	ChangeForCents *int64          `json:"changeForCents,omitempty"`
	Note           string          `json:"note,omitempty"`
	Address        DeliveryAddress `json:"address"`
	ZoneID         string          `json:"zoneId,omitempty"`
}

// CartResponse is the full cart view: lines, selection and derived totals.
type CartResponse struct {
	ID            string            `json:"id"`
	Items         []CartLine        `json:"items"`
	Selection     CheckoutSelection `json:"selection"`
	SubtotalCents int64             `json:"subtotalCents"`
	DeliveryCents int64             `json:"deliveryCents"`
	TotalCents    int64             `json:"totalCents"`
}

// CheckoutRequest triggers checkout on a cart.
// Example: {"clearCart": true}
type CheckoutRequest struct {
	ClearCart bool `json:"clearCart,omitempty"`
}

// CheckoutResponse carries the prepared order message and the WhatsApp
// deep link the client should open.
type CheckoutResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}
