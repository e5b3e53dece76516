package list_plans

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-QuoteService/internal/service/guard"
)

const (
	msgStepNotAllowed = "complete los datos del vehículo y del asegurado"
)

type Handler struct {
	plans  Plans
	logger Logger
}

func NewHandler(plans Plans, logger Logger) *Handler {
	return &Handler{
		plans:  plans,
		logger: logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/plans
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	listing, err := h.plans.List(r.Context(), sessionID)
	if err != nil {
		var redirect *guard.RedirectError
		if errors.As(err, &redirect) {
			h.logger.Warn("GET /sessions/{id}/plans - Step not allowed: session=%s redirect=%s", sessionID, redirect.RedirectTo)
			handlers.RespondRedirect(w, msgStepNotAllowed, string(redirect.RedirectTo))
			return
		}
		h.logger.Error("GET /sessions/{id}/plans - Failed to list plans: session=%s error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sessions/{id}/plans - Plans listed: session=%s count=%d", sessionID, len(listing.Plans))
	handlers.RespondJSON(w, http.StatusOK, listing)
}
