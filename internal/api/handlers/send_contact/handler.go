package send_contact

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	sendContactUC "github.com/m04kA/SMC-QuoteService/internal/usecase/send_contact"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidInput       = "revise los datos del formulario de contacto"
	msgSendFailed         = "no se pudo enviar el mensaje, intente nuevamente"
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

// Handle POST /api/v1/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.useCase.Execute(r.Context(), &sendContactUC.Request{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, sendContactUC.ErrInvalidInput):
			h.logger.Warn("POST /contact - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, sendContactUC.ErrSendFailed):
			h.logger.Error("POST /contact - Message not sent: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgSendFailed)
		default:
			h.logger.Error("POST /contact - Failed to send message: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /contact - Message sent: from=%s", req.Email)
	handlers.RespondJSON(w, http.StatusCreated, ContactResponse{Sent: true})
}
