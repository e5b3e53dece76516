package geonames

// PostalCode запись ответа findNearbyPostalCodesJSON
type PostalCode struct {
	PostalCode  string  `json:"postalCode"`
	PlaceName   string  `json:"placeName"`
	AdminName1  string  `json:"adminName1"`
	CountryCode string  `json:"countryCode"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Distance    string  `json:"distance"`
}

type nearbyResponse struct {
	PostalCodes []PostalCode `json:"postalCodes"`
	Status      *status      `json:"status,omitempty"`
}

// status GeoNames сообщает об ошибках телом ответа с кодом 200
type status struct {
	Message string `json:"message"`
	Value   int    `json:"value"`
}
