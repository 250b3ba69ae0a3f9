package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quitute-doce-desejo/models"
)

func TestAddItemMergesByID(t *testing.T) {
	c := New()

	c.AddItem("brigadeiro", "Brigadeiro", 650, 2)
	c.AddItem("beijinho", "Beijinho", 650, 1)
	c.AddItem("brigadeiro", "Brigadeiro", 650, 3)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "brigadeiro", lines[0].ID)
	assert.Equal(t, 5, lines[0].Qty)
	assert.Equal(t, "beijinho", lines[1].ID)
	assert.Equal(t, 1, lines[1].Qty)
}

func TestAddItemDistinctLineCount(t *testing.T) {
	c := New()

	adds := []struct {
		id  string
		qty int
	}{
		{"a", 1}, {"b", 2}, {"a", 3}, {"c", 1}, {"b", 1}, {"a", 1},
	}
	for _, ad := range adds {
		c.AddItem(ad.id, "Item "+ad.id, 100, ad.qty)
	}

	// Distinct lines equal distinct ids; each quantity is the sum of the
	// quantities added under that id.
	lines := c.Lines()
	require.Len(t, lines, 3)
	byID := map[string]int{}
	for _, l := range lines {
		byID[l.ID] = l.Qty
	}
	assert.Equal(t, map[string]int{"a": 5, "b": 3, "c": 1}, byID)
}

func TestAddItemClampsQty(t *testing.T) {
	c := New()
	c.AddItem("a", "A", 100, 0)
	c.AddItem("b", "B", 100, -4)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Qty)
	assert.Equal(t, 1, lines[1].Qty)
}

func TestRemoveItem(t *testing.T) {
	c := New()
	c.AddItem("a", "A", 100, 1)
	c.AddItem("b", "B", 200, 1)

	c.RemoveItem("a")
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "b", lines[0].ID)
}

func TestRemoveAbsentItemIsNoop(t *testing.T) {
	c := New()
	c.AddItem("a", "A", 100, 2)

	before := c.Lines()
	c.RemoveItem("missing")
	assert.Equal(t, before, c.Lines())
	assert.Equal(t, int64(200), c.SubtotalCents())
}

func TestSetQuantity(t *testing.T) {
	c := New()
	c.AddItem("a", "A", 100, 2)

	c.SetQuantity("a", 7)
	assert.Equal(t, 7, c.Lines()[0].Qty)

	// Clamped to a minimum of 1 on any edit.
	c.SetQuantity("a", 0)
	assert.Equal(t, 1, c.Lines()[0].Qty)
	c.SetQuantity("a", -3)
	assert.Equal(t, 1, c.Lines()[0].Qty)

	// Absent id changes nothing.
	c.SetQuantity("missing", 5)
	assert.Len(t, c.Lines(), 1)
}

func TestSubtotal(t *testing.T) {
	c := New()
	assert.Equal(t, int64(0), c.SubtotalCents())

	c.AddItem("a", "A", 650, 3)
	c.AddItem("b", "B", 1200, 2)
	assert.Equal(t, int64(650*3+1200*2), c.SubtotalCents())

	c.SetQuantity("b", 1)
	c.RemoveItem("a")
	assert.Equal(t, int64(1200), c.SubtotalCents())
}

func TestSubtotalOrderIndependent(t *testing.T) {
	a := New()
	a.AddItem("x", "X", 650, 1)
	a.AddItem("y", "Y", 800, 2)
	a.AddItem("x", "X", 650, 2)

	b := New()
	b.AddItem("y", "Y", 800, 2)
	b.AddItem("x", "X", 650, 3)

	assert.Equal(t, a.SubtotalCents(), b.SubtotalCents())
}

func TestTotalPickupIgnoresZoneFee(t *testing.T) {
	c := New()
	c.AddItem("brigadeiro", "Brigadeiro", 650, 3)
	c.SetZone(models.DeliveryZone{ID: "limoeiro", Name: "Limoeiro", FeeCents: 800})

	sel := c.Selection()
	sel.Fulfillment = models.FulfillmentPickup
	c.SetSelection(sel)

	assert.Equal(t, int64(1950), c.SubtotalCents())
	assert.Equal(t, int64(0), c.DeliveryFeeCents())
	assert.Equal(t, int64(1950), c.TotalCents())
}

func TestTotalDeliveryAddsZoneFee(t *testing.T) {
	c := New()
	c.AddItem("brigadeiro", "Brigadeiro", 650, 3)
	c.SetZone(models.DeliveryZone{ID: "limoeiro", Name: "Limoeiro", FeeCents: 800})

	assert.Equal(t, int64(1950), c.SubtotalCents())
	assert.Equal(t, int64(800), c.DeliveryFeeCents())
	assert.Equal(t, int64(2750), c.TotalCents())
}

func TestDeliveryWithoutZoneHasNoFee(t *testing.T) {
	c := New()
	c.AddItem("a", "A", 100, 1)
	assert.Equal(t, int64(0), c.DeliveryFeeCents())
	assert.Equal(t, int64(100), c.TotalCents())
}

func TestClearResetsSelection(t *testing.T) {
	c := New()
	c.AddItem("a", "A", 100, 1)
	c.SetZone(models.DeliveryZone{ID: "limoeiro", Name: "Limoeiro", FeeCents: 800})

	sel := c.Selection()
	sel.CustomerName = "Ana"
	sel.Fulfillment = models.FulfillmentPickup
	sel.PaymentMethod = models.PaymentCash
	sel.Note = "sem açúcar"
	sel.Address = models.DeliveryAddress{Street: "Rua A", City: "Caratinga", State: "MG"}
	c.SetSelection(sel)

	c.Clear()

	assert.Equal(t, 0, c.Len())
	got := c.Selection()
	assert.Equal(t, models.FulfillmentDelivery, got.Fulfillment)
	assert.Equal(t, models.PaymentPix, got.PaymentMethod)
	assert.Empty(t, got.CustomerName)
	assert.Empty(t, got.Note)
	assert.Empty(t, got.ZoneID)
	assert.Equal(t, models.DeliveryAddress{}, got.Address)
	assert.Equal(t, int64(0), c.TotalCents())
}

func TestSetSelectionPreservesZone(t *testing.T) {
	c := New()
	c.SetZone(models.DeliveryZone{ID: "limoeiro", Name: "Limoeiro", FeeCents: 800})

	sel := c.Selection()
	sel.CustomerName = "Ana"
	c.SetSelection(sel)

	got := c.Selection()
	assert.Equal(t, "limoeiro", got.ZoneID)
	assert.Equal(t, int64(800), got.DeliveryFeeCents)
}

func TestClearZone(t *testing.T) {
	c := New()
	c.SetZone(models.DeliveryZone{ID: "limoeiro", Name: "Limoeiro", FeeCents: 800})
	c.ClearZone()

	assert.Empty(t, c.Selection().ZoneID)
	assert.Equal(t, int64(0), c.DeliveryFeeCents())
}
