package location

import "github.com/m04kA/SMC-QuoteService/internal/domain"

const (
	// keyLocalities последние непустые результаты поиска, по ним фильтруется офлайн-поиск
	keyLocalities = "localities"

	keyPostalPrefix   = "location_postalCode_"
	keyLocalityPrefix = "location_locality_"
	keyCoordsPrefix   = "location_coords_"
)

const (
	// MinLocalityQueryLen минимальная длина названия для поиска по населённому пункту
	MinLocalityQueryLen = 3

	nearbyRadiusKm = 10
	nearbyMaxRows  = 10
)

type SearchRequest struct {
	SessionID string
	Query     string
	// Lat, Lon точка пользователя для сортировки по расстоянию
	Lat     *float64
	Lon     *float64
	Offline bool
}

type Result struct {
	Items  []domain.LocationData
	Notice domain.Notice
}
