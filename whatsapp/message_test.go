package whatsapp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pickupOpts() OrderOptions {
	return OrderOptions{
		StoreName:    "Quitute Doce Desejo",
		CustomerName: "Ana",
		Fulfillment:  "retirada",
		Pickup: &Pickup{
			Street:    "Rua Doce, 100",
			District:  "Centro",
			City:      "Caratinga",
			State:     "MG",
			Zip:       "35300-000",
			Reference: "Perto da praça",
			MapURL:    "https://maps.example/x",
		},
		Payment: Payment{Method: "pix"},
	}
}

func TestBuildOrderMessagePickup(t *testing.T) {
	items := []Item{{Name: "Brigadeiro", Qty: 3, UnitPriceCents: 650}}

	got := BuildOrderMessage(items, pickupOpts())

	want := strings.Join([]string{
		"*Quitute Doce Desejo* — Novo pedido",
		"",
		"*Nome:* Ana",
		"*Tipo:* Retirada na loja",
		"*Endereço da Loja:* Rua Doce, 100 – Centro",
		"*Cidade/UF:* Caratinga/MG • CEP 35300-000",
		"*Referência:* Perto da praça",
		"*Mapa:* https://maps.example/x",
		"*Pagamento:* PIX",
		"",
		"",
		"*Pedido*",
		"Brigadeiro - 3x - R$ 6,50",
		"-------------------------------",
		"*Subtotal:* R$ 19,50",
		"*Entrega:* R$ 0,00",
		"*Total:* R$ 19,50",
		"",
		"Pode confirmar o prazo?",
	}, "\n")

	assert.Equal(t, want, got)
}

func TestBuildOrderMessageDelivery(t *testing.T) {
	items := []Item{{Name: "Brigadeiro", Qty: 3, UnitPriceCents: 650}}
	opts := OrderOptions{
		StoreName:    "Quitute Doce Desejo",
		CustomerName: "Ana",
		Fulfillment:  "entrega",
		Address: &Address{
			Street:   "Rua A",
			Number:   "10",
			District: "Limoeiro",
			City:     "Caratinga",
			State:    "MG",
		},
		Payment:          Payment{Method: "pix"},
		DeliveryFeeCents: 800,
	}

	got := BuildOrderMessage(items, opts)

	assert.Contains(t, got, "*Endereço:* Rua A, 10\n")
	assert.Contains(t, got, "*Bairro:* Limoeiro\n")
	assert.Contains(t, got, "*Cidade/UF:* Caratinga/MG\n")
	assert.Contains(t, got, "*Entrega:* R$ 8,00")
	assert.Contains(t, got, "*Total:* R$ 27,50")
	assert.NotContains(t, got, "*Complemento:*")
}

func TestBuildOrderMessagePickupIgnoresDeliveryFee(t *testing.T) {
	items := []Item{{Name: "Brigadeiro", Qty: 3, UnitPriceCents: 650}}
	opts := pickupOpts()
	// A previously selected zone fee must not leak into a pickup order.
	opts.DeliveryFeeCents = 800

	got := BuildOrderMessage(items, opts)

	assert.Contains(t, got, "*Entrega:* R$ 0,00")
	assert.Contains(t, got, "*Total:* R$ 19,50")
}

func TestBuildOrderMessageCashWithChange(t *testing.T) {
	change := int64(5000)
	opts := pickupOpts()
	opts.Payment = Payment{Method: "dinheiro", ChangeForCents: &change}

	got := BuildOrderMessage(nil, opts)

	assert.Contains(t, got, "*Pagamento:* Dinheiro (troco para R$ 50,00)")
}

func TestBuildOrderMessageChangeOnlyForCash(t *testing.T) {
	change := int64(5000)
	opts := pickupOpts()
	opts.Payment = Payment{Method: "credito", ChangeForCents: &change}

	got := BuildOrderMessage(nil, opts)

	assert.Contains(t, got, "*Pagamento:* Crédito")
	assert.NotContains(t, got, "troco")
}

func TestBuildOrderMessageUnknownPaymentUppercased(t *testing.T) {
	opts := pickupOpts()
	opts.Payment = Payment{Method: "vale"}

	got := BuildOrderMessage(nil, opts)

	assert.Contains(t, got, "*Pagamento:* VALE")
}

func TestBuildOrderMessageNote(t *testing.T) {
	opts := pickupOpts()
	opts.Note = "  Sem açúcar, por favor.  "

	got := BuildOrderMessage(nil, opts)
	assert.Contains(t, got, "*Observações:* Sem açúcar, por favor.")

	opts.Note = "   "
	got = BuildOrderMessage(nil, opts)
	assert.NotContains(t, got, "*Observações:*")
}

func TestBuildOrderMessageEmptyCart(t *testing.T) {
	got := BuildOrderMessage(nil, pickupOpts())

	// Building is not blocked on an empty cart; the message is still
	// structurally complete with zero totals.
	assert.Contains(t, got, "*Quitute Doce Desejo* — Novo pedido")
	assert.Contains(t, got, "*Pedido*")
	assert.Contains(t, got, "*Subtotal:* R$ 0,00")
	assert.Contains(t, got, "*Entrega:* R$ 0,00")
	assert.Contains(t, got, "*Total:* R$ 0,00")
	assert.True(t, strings.HasSuffix(got, "Pode confirmar o prazo?"))
}

func TestBuildOrderMessageEmptyCartDeliveryKeepsZoneFee(t *testing.T) {
	opts := pickupOpts()
	opts.Fulfillment = "entrega"
	opts.Address = &Address{Street: "Rua A", City: "Caratinga", State: "MG"}
	opts.DeliveryFeeCents = 800

	got := BuildOrderMessage(nil, opts)

	assert.Contains(t, got, "*Subtotal:* R$ 0,00")
	assert.Contains(t, got, "*Entrega:* R$ 8,00")
	assert.Contains(t, got, "*Total:* R$ 8,00")
}

func TestBuildOrderMessageItemOrderPreserved(t *testing.T) {
	items := []Item{
		{Name: "Torta de limão", Qty: 1, UnitPriceCents: 1600},
		{Name: "Brigadeiro", Qty: 2, UnitPriceCents: 650},
		{Name: "Beijinho", Qty: 1, UnitPriceCents: 650},
	}

	got := BuildOrderMessage(items, pickupOpts())

	torta := strings.Index(got, "Torta de limão - 1x")
	briga := strings.Index(got, "Brigadeiro - 2x")
	beiji := strings.Index(got, "Beijinho - 1x")
	require.True(t, torta >= 0 && briga >= 0 && beiji >= 0)
	assert.Less(t, torta, briga)
	assert.Less(t, briga, beiji)
}

func TestBuildOrderMessageDeterministic(t *testing.T) {
	items := []Item{{Name: "Brownie", Qty: 2, UnitPriceCents: 1200}}
	opts := pickupOpts()
	assert.Equal(t, BuildOrderMessage(items, opts), BuildOrderMessage(items, opts))
}

func TestBuildContactMessage(t *testing.T) {
	got := BuildContactMessage("Quitute Doce Desejo", ContactPayload{
		Name:    "Maria",
		Subject: "Encomenda",
		Phone:   "(33) 98888-0000",
		Message: "Gostaria de um orçamento.",
	})

	want := strings.Join([]string{
		"Olá, *Quitute Doce Desejo*!",
		"Meu nome é *Maria*.",
		"Assunto: Encomenda",
		"Telefone: (33) 98888-0000",
		"Gostaria de um orçamento.",
	}, "\n")

	assert.Equal(t, want, got)
}

func TestBuildContactMessageMinimal(t *testing.T) {
	got := BuildContactMessage("Loja", ContactPayload{Name: "Zé", Message: "Oi"})

	assert.Equal(t, "Olá, *Loja*!\nMeu nome é *Zé*.\nOi", got)
}
