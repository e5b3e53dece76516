package location

import (
	"strings"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

func coord(v float64) *float64 { return &v }

// fallbackLocations известные населённые пункты на случай недоступности внешних сервисов
var fallbackLocations = []domain.LocationData{
	{PostalCode: "B1636", Locality: "Olivos", Province: "Buenos Aires", Latitude: coord(-34.51), Longitude: coord(-58.50)},
	{PostalCode: "C1425", Locality: "Palermo", Province: "CABA", Latitude: coord(-34.58), Longitude: coord(-58.42)},
	{PostalCode: "X5000", Locality: "Córdoba", Province: "Córdoba", Latitude: coord(-31.42), Longitude: coord(-64.18)},
	{PostalCode: "S2000", Locality: "Rosario", Province: "Santa Fe", Latitude: coord(-32.95), Longitude: coord(-60.64)},
	{PostalCode: "M5500", Locality: "Mendoza", Province: "Mendoza", Latitude: coord(-32.89), Longitude: coord(-68.85)},
}

// filterLocations подстрока без учёта регистра по индексу или названию
func filterLocations(items []domain.LocationData, query string) []domain.LocationData {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.LocationData, 0, len(items))
	for _, loc := range items {
		if strings.Contains(strings.ToLower(loc.PostalCode), q) || strings.Contains(strings.ToLower(loc.Locality), q) {
			out = append(out, loc)
		}
	}
	return out
}
