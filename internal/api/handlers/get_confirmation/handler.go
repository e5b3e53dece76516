package get_confirmation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-QuoteService/internal/service/guard"
	"github.com/m04kA/SMC-QuoteService/internal/usecase/confirm_quote"
)

const (
	msgStepNotAllowed = "complete todos los pasos de la cotización"
)

type Handler struct {
	confirmation Confirmation
	logger       Logger
}

func NewHandler(confirmation Confirmation, logger Logger) *Handler {
	return &Handler{
		confirmation: confirmation,
		logger:       logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/confirmation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	resp, err := h.confirmation.Preview(r.Context(), &confirm_quote.Request{SessionID: sessionID})
	if err != nil {
		var redirect *guard.RedirectError
		if errors.As(err, &redirect) {
			h.logger.Warn("GET /sessions/{id}/confirmation - Step not allowed: session=%s redirect=%s", sessionID, redirect.RedirectTo)
			handlers.RespondRedirect(w, msgStepNotAllowed, string(redirect.RedirectTo))
			return
		}
		h.logger.Error("GET /sessions/{id}/confirmation - Failed to build summary: session=%s error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SummaryResponse{
		MonthlyPrice: resp.MonthlyPrice,
		Summary:      resp.Params,
	})
}
