package create_session

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := uuid.NewString()

	h.logger.Info("POST /sessions - Session created: session=%s", sessionID)
	handlers.RespondJSON(w, http.StatusCreated, SessionResponse{SessionID: sessionID})
}
