package domain

// LocationData результат поиска населённого пункта
type LocationData struct {
	PostalCode string   `json:"postalCode"`
	Locality   string   `json:"locality"`
	Province   string   `json:"province"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

// HasCoordinates у записи есть обе координаты
func (l LocationData) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}
