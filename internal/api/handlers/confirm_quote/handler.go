package confirm_quote

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-QuoteService/internal/service/guard"
	confirmQuoteUC "github.com/m04kA/SMC-QuoteService/internal/usecase/confirm_quote"
)

const (
	msgStepNotAllowed = "complete todos los pasos de la cotización"
	msgSendFailed     = "no se pudo enviar el correo de confirmación, intente nuevamente"
)

type Handler struct {
	useCase UseCase
	logger  Logger
}

func NewHandler(useCase UseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/confirmation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	resp, err := h.useCase.Execute(r.Context(), &confirmQuoteUC.Request{SessionID: sessionID})
	if err != nil {
		var redirect *guard.RedirectError
		switch {
		case errors.As(err, &redirect):
			h.logger.Warn("POST /sessions/{id}/confirmation - Step not allowed: session=%s redirect=%s", sessionID, redirect.RedirectTo)
			handlers.RespondRedirect(w, msgStepNotAllowed, string(redirect.RedirectTo))
		case errors.Is(err, confirmQuoteUC.ErrSendFailed):
			h.logger.Error("POST /sessions/{id}/confirmation - Email not sent: session=%s error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSendFailed)
		default:
			h.logger.Error("POST /sessions/{id}/confirmation - Failed to confirm quote: session=%s error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/confirmation - Quote confirmed: session=%s price=%d", sessionID, resp.MonthlyPrice)
	handlers.RespondJSON(w, http.StatusOK, ConfirmationResponse{
		MonthlyPrice: resp.MonthlyPrice,
		Summary:      resp.Params,
		EmailSent:    true,
	})
}
