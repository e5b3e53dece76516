package nearby_locations

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-QuoteService/internal/api/middleware"
)

const (
	msgInvalidLatitude  = "latitud inválida"
	msgInvalidLongitude = "longitud inválida"
)

type Handler struct {
	locations Locations
	logger    Logger
}

func NewHandler(locations Locations, logger Logger) *Handler {
	return &Handler{
		locations: locations,
		logger:    logger,
	}
}

// Handle GET /api/v1/locations/nearby?lat=&lon=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	lat, err := strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		h.logger.Warn("GET /locations/nearby - Invalid latitude: %q", query.Get("lat"))
		handlers.RespondBadRequest(w, msgInvalidLatitude)
		return
	}
	lon, err := strconv.ParseFloat(query.Get("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		h.logger.Warn("GET /locations/nearby - Invalid longitude: %q", query.Get("lon"))
		handlers.RespondBadRequest(w, msgInvalidLongitude)
		return
	}

	sessionID, _ := middleware.GetSessionID(r.Context())

	items := h.locations.Nearby(r.Context(), sessionID, lat, lon)

	h.logger.Info("GET /locations/nearby - Postal codes found: session=%s count=%d", sessionID, len(items))
	handlers.RespondJSON(w, http.StatusOK, LocationsResponse{Items: items})
}
