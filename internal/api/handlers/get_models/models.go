package get_models

import "github.com/m04kA/SMC-QuoteService/internal/domain"

// ModelsResponse HTTP response model
type ModelsResponse struct {
	Items  []domain.Model `json:"items"`
	Notice domain.Notice  `json:"notice,omitempty"`
}
