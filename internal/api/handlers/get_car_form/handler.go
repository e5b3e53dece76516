package get_car_form

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-QuoteService/internal/api/middleware"
)

type Handler struct {
	form   CarForm
	logger Logger
}

func NewHandler(form CarForm, logger Logger) *Handler {
	return &Handler{
		form:   form,
		logger: logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/car-form
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	form := h.form.Load(r.Context(), sessionID, middleware.IsOffline(r.Context()))

	h.logger.Info("GET /sessions/{id}/car-form - Form loaded: session=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, form)
}
