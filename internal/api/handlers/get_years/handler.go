package get_years

import (
	"net/http"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
)

type Handler struct {
	catalog Catalog
}

func NewHandler(catalog Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// Handle GET /api/v1/catalog/years
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, YearsResponse{Items: h.catalog.Years()})
}
