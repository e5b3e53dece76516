package location

import (
	"math"
	"sort"

	"github.com/umahmood/haversine"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

// DistanceKm расстояние по большому кругу между точками (радиус Земли 6371 км)
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: lat1, Lon: lon1},
		haversine.Coord{Lat: lat2, Lon: lon2},
	)
	return km
}

// SortByDistance сортирует по удалённости от точки; записи без координат в конце
func SortByDistance(items []domain.LocationData, lat, lon float64) {
	dist := func(loc domain.LocationData) float64 {
		if !loc.HasCoordinates() {
			return math.Inf(1)
		}
		return DistanceKm(lat, lon, *loc.Latitude, *loc.Longitude)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return dist(items[i]) < dist(items[j])
	})
}
