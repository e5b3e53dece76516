package reset_session

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
)

type Handler struct {
	store  QuoteStore
	logger Logger
}

func NewHandler(store QuoteStore, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle DELETE /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	h.store.Reset(r.Context(), sessionID)

	h.logger.Info("DELETE /sessions/{id} - Session reset: session=%s", sessionID)
	handlers.RespondNoContent(w)
}
