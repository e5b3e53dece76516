package confirm_quote

// ConfirmationResponse HTTP response model
type ConfirmationResponse struct {
	MonthlyPrice int               `json:"monthlyPrice"`
	Summary      map[string]string `json:"summary"`
	EmailSent    bool              `json:"emailSent"`
}
