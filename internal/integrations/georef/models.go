package georef

// Locality населённый пункт из /localidades
type Locality struct {
	ID       string    `json:"id"`
	Name     string    `json:"nombre"`
	Province Province  `json:"provincia"`
	Centroid *Centroid `json:"centroide,omitempty"`
}

type Province struct {
	ID   string `json:"id"`
	Name string `json:"nombre"`
}

type Centroid struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type localitiesResponse struct {
	Cantidad    int        `json:"cantidad"`
	Total       int        `json:"total"`
	Localidades []Locality `json:"localidades"`
}

type postalCode struct {
	Code string `json:"codigo_postal"`
}

type postalCodesResponse struct {
	CodigosPostales []postalCode `json:"codigos_postales"`
}
