package nearby_locations

import "github.com/m04kA/SMC-QuoteService/internal/domain"

// LocationsResponse HTTP response model
type LocationsResponse struct {
	Items []domain.LocationData `json:"items"`
}
