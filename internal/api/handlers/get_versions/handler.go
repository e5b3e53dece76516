package get_versions

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-QuoteService/internal/api/middleware"
	"github.com/m04kA/SMC-QuoteService/internal/service/catalog"
)

const (
	msgInvalidModelID = "identificador de modelo inválido"
	msgInvalidYear    = "año inválido"
)

type Handler struct {
	catalog Catalog
	logger  Logger
}

func NewHandler(catalog Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog/models/{modelId}/versions?modelName=&year=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	modelID, err := strconv.ParseInt(mux.Vars(r)["modelId"], 10, 64)
	if err != nil || modelID <= 0 {
		h.logger.Warn("GET /catalog/models/{id}/versions - Invalid model ID: %v", mux.Vars(r)["modelId"])
		handlers.RespondBadRequest(w, msgInvalidModelID)
		return
	}

	query := r.URL.Query()

	var year *int
	if v := strings.TrimSpace(query.Get("year")); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			h.logger.Warn("GET /catalog/models/{id}/versions - Invalid year: %v", v)
			handlers.RespondBadRequest(w, msgInvalidYear)
			return
		}
		year = &parsed
	}

	sessionID, _ := middleware.GetSessionID(r.Context())

	result := h.catalog.Versions(r.Context(), catalog.VersionsRequest{
		SessionID: sessionID,
		ModelID:   modelID,
		ModelName: strings.TrimSpace(query.Get("modelName")),
		Year:      year,
		Offline:   middleware.IsOffline(r.Context()),
	})

	h.logger.Info("GET /catalog/models/{id}/versions - Versions listed: session=%s model=%d count=%d notice=%q",
		sessionID, modelID, len(result.Items), result.Notice)
	handlers.RespondJSON(w, http.StatusOK, VersionsResponse{
		Items:  result.Items,
		Notice: result.Notice,
	})
}
