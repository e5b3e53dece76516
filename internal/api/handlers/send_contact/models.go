package send_contact

// ContactRequest HTTP request model
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactResponse HTTP response model
type ContactResponse struct {
	Sent bool `json:"sent"`
}
