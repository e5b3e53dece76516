package get_session

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

type Handler struct {
	store  QuoteStore
	guard  Guard
	logger Logger
}

func NewHandler(store QuoteStore, guard Guard, logger Logger) *Handler {
	return &Handler{
		store:  store,
		guard:  guard,
		logger: logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	resp := SessionResponse{
		SessionID: sessionID,
		Quote:     h.store.Snapshot(r.Context(), sessionID),
		Steps:     make(map[string]bool, len(domain.Steps)),
		NextStep:  domain.StepConfirmation,
	}

	// NextStep: шаг, на который перенаправляет проверка подтверждения
	for _, step := range domain.Steps {
		decision := h.guard.Check(r.Context(), sessionID, step)
		resp.Steps[string(step)] = decision.Allowed
		if step == domain.StepConfirmation && !decision.Allowed {
			resp.NextStep = decision.RedirectTo
		}
	}

	h.logger.Info("GET /sessions/{id} - Session retrieved: session=%s next=%s", sessionID, resp.NextStep)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
