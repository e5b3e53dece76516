package get_brands

import "github.com/m04kA/SMC-QuoteService/internal/domain"

// BrandsResponse HTTP response model
type BrandsResponse struct {
	Items  []domain.Brand `json:"items"`
	Notice domain.Notice  `json:"notice,omitempty"`
}
