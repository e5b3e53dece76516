package check_step

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

const (
	msgUnknownStep = "paso desconocido"
)

type Handler struct {
	guard  Guard
	logger Logger
}

func NewHandler(guard Guard, logger Logger) *Handler {
	return &Handler{
		guard:  guard,
		logger: logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/steps/{step}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	step, err := domain.ParseStep(vars["step"])
	if err != nil {
		h.logger.Warn("GET /sessions/{id}/steps/{step} - %v", err)
		handlers.RespondNotFound(w, msgUnknownStep)
		return
	}

	decision := h.guard.Check(r.Context(), sessionID, step)

	handlers.RespondJSON(w, http.StatusOK, DecisionResponse{
		Step:       string(step),
		Allowed:    decision.Allowed,
		RedirectTo: string(decision.RedirectTo),
	})
}
