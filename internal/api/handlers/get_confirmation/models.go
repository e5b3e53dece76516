package get_confirmation

// SummaryResponse HTTP response model
type SummaryResponse struct {
	MonthlyPrice int               `json:"monthlyPrice"`
	Summary      map[string]string `json:"summary"`
}
