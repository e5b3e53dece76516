package search_locations

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-QuoteService/internal/api/middleware"
	"github.com/m04kA/SMC-QuoteService/internal/service/location"
	"github.com/m04kA/SMC-QuoteService/pkg/debounce"
)

const (
	msgInvalidCoordinates = "coordenadas inválidas"
)

type Handler struct {
	locations Locations
	debouncer *debounce.Group[location.Result]
	logger    Logger
}

// NewHandler delay задержка перед поиском; более новый запрос той же сессии вытесняет ожидающий.
// Состояние сессии забывается через ttl без запросов.
func NewHandler(locations Locations, delay, ttl time.Duration, logger Logger) *Handler {
	return &Handler{
		locations: locations,
		debouncer: debounce.New[location.Result](delay, ttl),
		logger:    logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/locations/search?q=&lat=&lon=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	query := r.URL.Query()

	req := location.SearchRequest{
		SessionID: sessionID,
		Query:     strings.TrimSpace(query.Get("q")),
		Offline:   middleware.IsOffline(r.Context()),
	}

	lat, lon, err := parseCoordinates(query.Get("lat"), query.Get("lon"))
	if err != nil {
		h.logger.Warn("GET /sessions/{id}/locations/search - %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoordinates)
		return
	}
	req.Lat, req.Lon = lat, lon

	input := fmt.Sprintf("%s|%s|%s|%t", req.Query, query.Get("lat"), query.Get("lon"), req.Offline)

	result, err := h.debouncer.Do(r.Context(), sessionID, input, func(ctx context.Context) (location.Result, error) {
		return h.locations.Search(ctx, req), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, debounce.ErrSuperseded):
			h.logger.Info("GET /sessions/{id}/locations/search - Superseded: session=%s q=%q", sessionID, req.Query)
			handlers.RespondNoContent(w)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			h.logger.Info("GET /sessions/{id}/locations/search - Request cancelled: session=%s", sessionID)
		default:
			h.logger.Error("GET /sessions/{id}/locations/search - Failed to search: session=%s error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions/{id}/locations/search - Locations found: session=%s q=%q count=%d",
		sessionID, req.Query, len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, LocationsResponse{
		Items:  result.Items,
		Notice: result.Notice,
	})
}

// Forget сбрасывает состояние поиска сессии
func (h *Handler) Forget(sessionID string) {
	h.debouncer.Forget(sessionID)
}

// parseCoordinates точка учитывается только если заданы обе координаты
func parseCoordinates(latRaw, lonRaw string) (*float64, *float64, error) {
	latRaw, lonRaw = strings.TrimSpace(latRaw), strings.TrimSpace(lonRaw)
	if latRaw == "" || lonRaw == "" {
		return nil, nil, nil
	}

	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil || lat < -90 || lat > 90 {
		return nil, nil, fmt.Errorf("invalid latitude: %q", latRaw)
	}
	lon, err := strconv.ParseFloat(lonRaw, 64)
	if err != nil || lon < -180 || lon > 180 {
		return nil, nil, fmt.Errorf("invalid longitude: %q", lonRaw)
	}

	return &lat, &lon, nil
}
