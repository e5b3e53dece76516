package get_versions

import "github.com/m04kA/SMC-QuoteService/internal/domain"

// VersionsResponse HTTP response model
type VersionsResponse struct {
	Items  []domain.Version `json:"items"`
	Notice domain.Notice    `json:"notice,omitempty"`
}
