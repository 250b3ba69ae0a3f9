package models

// ContactLinkRequest is a contact-form submission to be turned into a
// WhatsApp link. Name and message are required; the rest is optional.
// Example: {"name": "Maria", "subject": "Encomenda", "message": "Olá!"}
type ContactLinkRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Subject string `json:"subject,omitempty"`
	Source  string `json:"source,omitempty"`
	Message string `json:"message"`
}

// ContactLinkResponse carries a prepared WhatsApp deep link.
type ContactLinkResponse struct {
	URL string `json:"url"`
}
