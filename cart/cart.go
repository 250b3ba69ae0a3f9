// Package cart holds the mutable shopping-cart state for one storefront
// session: line items plus the delivery/payment selection, with derived
// totals. A Cart has a single owner and is not safe for concurrent use;
// the SessionStore serializes access for the HTTP layer.
package cart

import "quitute-doce-desejo/models"

// Cart is the central mutable model for one session. All operations are
// total over the in-memory state: none of them fail.
type Cart struct {
	lines []models.CartLine
	sel   models.CheckoutSelection
}

// New returns an empty cart with the default checkout selection:
// fulfillment entrega, payment pix.
func New() *Cart {
	c := &Cart{}
	c.resetSelection()
	return c
}

func (c *Cart) resetSelection() {
	c.sel = models.CheckoutSelection{
		Fulfillment:   models.FulfillmentDelivery,
		PaymentMethod: models.PaymentPix,
	}
}

// AddItem adds qty units of a product or bundle. If the id is already in
// the cart the existing line's quantity is incremented; insertion order is
// preserved. qty values below 1 count as 1.
func (c *Cart) AddItem(id, name string, unitPriceCents int64, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines[i].Qty += qty
			return
		}
	}
	c.lines = append(c.lines, models.CartLine{
		ID:             id,
		Name:           name,
		UnitPriceCents: unitPriceCents,
		Qty:            qty,
	})
}

// RemoveItem deletes the line with the given id. Absent ids are a no-op.
func (c *Cart) RemoveItem(id string) {
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the quantity of the line with the given id, clamped to a
// minimum of 1. Absent ids are a no-op.
func (c *Cart) SetQuantity(id string, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines[i].Qty = qty
			return
		}
	}
}

// Clear empties the cart and resets the checkout selection to its
// defaults: address cleared, fulfillment entrega, payment pix, no zone.
func (c *Cart) Clear() {
	c.lines = nil
	c.resetSelection()
}

// Lines returns a copy of the line items in insertion order.
func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of distinct line items.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Selection returns the current checkout selection.
func (c *Cart) Selection() models.CheckoutSelection {
	return c.sel
}

// SetSelection replaces the checkout selection. Zone and fee fields are
// managed through SetZone/ClearZone and are preserved here.
func (c *Cart) SetSelection(sel models.CheckoutSelection) {
	zoneID, zoneName, fee := c.sel.ZoneID, c.sel.ZoneName, c.sel.DeliveryFeeCents
	c.sel = sel
	c.sel.ZoneID = zoneID
	c.sel.ZoneName = zoneName
	c.sel.DeliveryFeeCents = fee
}

// SetZone records the selected delivery zone and its flat fee.
func (c *Cart) SetZone(zone models.DeliveryZone) {
	c.sel.ZoneID = zone.ID
	c.sel.ZoneName = zone.Name
	c.sel.DeliveryFeeCents = zone.FeeCents
}

// ClearZone removes the selected zone; the delivery fee drops to zero.
func (c *Cart) ClearZone() {
	c.sel.ZoneID = ""
	c.sel.ZoneName = ""
	c.sel.DeliveryFeeCents = 0
}

// SubtotalCents is the sum of unit price times quantity over all lines.
// Zero for an empty cart.
func (c *Cart) SubtotalCents() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.UnitPriceCents * int64(l.Qty)
	}
	return total
}

// DeliveryFeeCents is the effective delivery fee: the selected zone's fee
// under entrega, always zero under retirada.
func (c *Cart) DeliveryFeeCents() int64 {
	if c.sel.Fulfillment != models.FulfillmentDelivery {
		return 0
	}
	return c.sel.DeliveryFeeCents
}

// TotalCents is subtotal plus the effective delivery fee.
func (c *Cart) TotalCents() int64 {
	return c.SubtotalCents() + c.DeliveryFeeCents()
}
