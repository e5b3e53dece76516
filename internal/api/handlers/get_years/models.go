package get_years

// YearsResponse HTTP response model
type YearsResponse struct {
	Items []int `json:"items"`
}
