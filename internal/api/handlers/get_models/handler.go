package get_models

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
	msgInvalidBrandID = "identificador de marca inválido"
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

// Handle GET /api/v1/catalog/brands/{brandId}/models?brandName=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	brandID, err := strconv.ParseInt(mux.Vars(r)["brandId"], 10, 64)
	if err != nil || brandID <= 0 {
		h.logger.Warn("GET /catalog/brands/{id}/models - Invalid brand ID: %v", mux.Vars(r)["brandId"])
		handlers.RespondBadRequest(w, msgInvalidBrandID)
		return
	}

	sessionID, _ := middleware.GetSessionID(r.Context())

	result := h.catalog.Models(r.Context(), catalog.ModelsRequest{
		SessionID: sessionID,
		BrandID:   brandID,
		BrandName: strings.TrimSpace(r.URL.Query().Get("brandName")),
		Offline:   middleware.IsOffline(r.Context()),
	})

	h.logger.Info("GET /catalog/brands/{id}/models - Models listed: session=%s brand=%d count=%d notice=%q",
		sessionID, brandID, len(result.Items), result.Notice)
	handlers.RespondJSON(w, http.StatusOK, ModelsResponse{
		Items:  result.Items,
		Notice: result.Notice,
	})
}
