package zippopotam

// PostalCode ответ /{country}/{code}
type PostalCode struct {
	PostCode            string  `json:"post code"`
	Country             string  `json:"country"`
	CountryAbbreviation string  `json:"country abbreviation"`
	Places              []Place `json:"places"`
}

// Place населённый пункт; координаты приходят строками
type Place struct {
	PlaceName string `json:"place name"`
	State     string `json:"state"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}
