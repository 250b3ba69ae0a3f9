package whatsapp

import (
	"strconv"
	"strings"

	"quitute-doce-desejo/utils"
)

// Item is one order line as it appears in the message.
type Item struct {
	Name           string
	Qty            int
	UnitPriceCents int64
}

// Address is the customer's delivery address.
type Address struct {
	Street     string
	Number     string
	Complement string
	District   string
	City       string
	State      string
}

// Pickup is the store's own address, shown when the order is picked up.
type Pickup struct {
	Street    string
	District  string
	City      string
	State     string
	Zip       string
	Reference string
	MapURL    string
}

// Payment is the payment choice. ChangeFor is only rendered for dinheiro.
type Payment struct {
	Method         string
	ChangeForCents *int64
}

// OrderOptions carries everything besides the items that the order message
// needs. DeliveryFeeCents is only applied under entrega.
type OrderOptions struct {
	StoreName        string
	CustomerName     string
	Fulfillment      string // "entrega" or "retirada"
	Address          *Address
	Pickup           *Pickup
	Payment          Payment
	DeliveryFeeCents int64
	Note             string
}

// paymentLabels maps wire payment methods to their display labels.
// Unknown methods fall back to upper-case.
var paymentLabels = map[string]string{
	"pix":      "PIX",
	"credito":  "Crédito",
	"debito":   "Débito",
	"dinheiro": "Dinheiro",
}

// BuildOrderMessage renders the cart into the order text sent to the store.
// Pure and deterministic: identical inputs always produce identical output.
// An empty item list still yields a complete message with zero totals;
// blocking empty-cart sends is the caller's job.
//
// Section order is fixed: header, customer block, payment line, optional
// note, itemized list in insertion order, financial footer, closing line.
func BuildOrderMessage(items []Item, opts OrderOptions) string {
	var subtotal int64
	for _, it := range items {
		subtotal += it.UnitPriceCents * int64(it.Qty)
	}

	entrega := int64(0)
	if opts.Fulfillment == "entrega" {
		entrega = opts.DeliveryFeeCents
	}
	total := subtotal + entrega

	header := "*" + opts.StoreName + "* — Novo pedido"

	var dados strings.Builder
	dados.WriteString("*Nome:* " + opts.CustomerName + "\n")

	if opts.Fulfillment == "entrega" && opts.Address != nil {
		dados.WriteString("*Endereço:* " + opts.Address.Street)
		if opts.Address.Number != "" {
			dados.WriteString(", " + opts.Address.Number)
		}
		dados.WriteString("\n")
		if opts.Address.Complement != "" {
			dados.WriteString("*Complemento:* " + opts.Address.Complement + "\n")
		}
		if opts.Address.District != "" {
			dados.WriteString("*Bairro:* " + opts.Address.District + "\n")
		}
		dados.WriteString("*Cidade/UF:* " + opts.Address.City + "/" + opts.Address.State + "\n")
	} else if opts.Fulfillment == "retirada" && opts.Pickup != nil {
		dados.WriteString("*Tipo:* Retirada na loja\n")
		dados.WriteString("*Endereço da Loja:* " + opts.Pickup.Street)
		if opts.Pickup.District != "" {
			dados.WriteString(" – " + opts.Pickup.District)
		}
		dados.WriteString("\n")
		dados.WriteString("*Cidade/UF:* " + opts.Pickup.City + "/" + opts.Pickup.State)
		if opts.Pickup.Zip != "" {
			dados.WriteString(" • CEP " + opts.Pickup.Zip)
		}
		dados.WriteString("\n")
		if opts.Pickup.Reference != "" {
			dados.WriteString("*Referência:* " + opts.Pickup.Reference + "\n")
		}
		if opts.Pickup.MapURL != "" {
			dados.WriteString("*Mapa:* " + opts.Pickup.MapURL + "\n")
		}
	}

	metodo, ok := paymentLabels[opts.Payment.Method]
	if !ok {
		metodo = strings.ToUpper(opts.Payment.Method)
	}
	dados.WriteString("*Pagamento:* " + metodo)
	if opts.Payment.Method == "dinheiro" && opts.Payment.ChangeForCents != nil {
		dados.WriteString(" (troco para " + utils.FormatBRL(*opts.Payment.ChangeForCents) + ")")
	}

	observacoes := ""
	if note := strings.TrimSpace(opts.Note); note != "" {
		observacoes = "\n\n*Observações:* " + note
	}

	linhas := make([]string, 0, len(items))
	for _, it := range items {
		linhas = append(linhas, it.Name+" - "+strconv.Itoa(it.Qty)+"x - "+utils.FormatBRL(it.UnitPriceCents))
	}

	financeiro := strings.Join([]string{
		"-------------------------------",
		"*Subtotal:* " + utils.FormatBRL(subtotal),
		"*Entrega:* " + utils.FormatBRL(entrega),
		"*Total:* " + utils.FormatBRL(total),
	}, "\n")

	return strings.Join([]string{
		header,
		"",
		dados.String(),
		observacoes,
		"\n*Pedido*",
		strings.Join(linhas, "\n"),
		financeiro,
		"",
		"Pode confirmar o prazo?",
	}, "\n")
}

// BuildContactMessage renders a contact-form submission into the text the
// contact page sends. Optional fields are omitted entirely when blank.
func BuildContactMessage(storeName string, req ContactPayload) string {
	lines := []string{
		"Olá, *" + storeName + "*!",
		"Meu nome é *" + req.Name + "*.",
	}
	if req.Subject != "" {
		lines = append(lines, "Assunto: "+req.Subject)
	}
	if req.Phone != "" {
		lines = append(lines, "Telefone: "+req.Phone)
	}
	if req.Email != "" {
		lines = append(lines, "E-mail: "+req.Email)
	}
	if req.Source != "" {
		lines = append(lines, "Origem: "+req.Source)
	}
	lines = append(lines, req.Message)
	return strings.Join(lines, "\n")
}

// ContactPayload is the contact-form data rendered by BuildContactMessage.
type ContactPayload struct {
	Name    string
	Phone   string
	Email   string
	Subject string
	Source  string
	Message string
}
