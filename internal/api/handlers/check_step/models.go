package check_step

// DecisionResponse HTTP response model
type DecisionResponse struct {
	Step       string `json:"step"`
	Allowed    bool   `json:"allowed"`
	RedirectTo string `json:"redirectTo,omitempty"`
}
