package get_brands

import (
	"net/http"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-QuoteService/internal/api/middleware"
	"github.com/m04kA/SMC-QuoteService/internal/service/catalog"
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

// Handle GET /api/v1/catalog/brands
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := middleware.GetSessionID(r.Context())

	result := h.catalog.Brands(r.Context(), catalog.BrandsRequest{
		SessionID: sessionID,
		Offline:   middleware.IsOffline(r.Context()),
	})

	h.logger.Info("GET /catalog/brands - Brands listed: session=%s count=%d notice=%q", sessionID, len(result.Items), result.Notice)
	handlers.RespondJSON(w, http.StatusOK, BrandsResponse{
		Items:  result.Items,
		Notice: result.Notice,
	})
}
