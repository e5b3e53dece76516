package update_car_form

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-QuoteService/internal/api/middleware"
	"github.com/m04kA/SMC-QuoteService/internal/service/carform"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgUnknownField       = "campo desconocido"
	msgUnknownOption      = "la opción seleccionada no está disponible"
	msgParentRequired     = "seleccione primero la marca y el modelo"
	msgInvalidValue       = "valor inválido"
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

// Handle PATCH /api/v1/sessions/{sessionId}/car-form
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var ev carform.Event
	if err := handlers.DecodeJSON(r, &ev); err != nil {
		h.logger.Warn("PATCH /sessions/{id}/car-form - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	form, err := h.form.Apply(r.Context(), sessionID, ev, middleware.IsOffline(r.Context()))
	if err != nil {
		h.logger.Warn("PATCH /sessions/{id}/car-form - Event rejected: session=%s field=%s error=%v", sessionID, ev.Field, err)
		switch {
		case errors.Is(err, carform.ErrUnknownField):
			handlers.RespondBadRequest(w, msgUnknownField)
		case errors.Is(err, carform.ErrUnknownOption):
			handlers.RespondBadRequest(w, msgUnknownOption)
		case errors.Is(err, carform.ErrParentRequired):
			handlers.RespondBadRequest(w, msgParentRequired)
		case errors.Is(err, carform.ErrInvalidValue):
			handlers.RespondBadRequest(w, msgInvalidValue)
		default:
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /sessions/{id}/car-form - Field updated: session=%s field=%s", sessionID, ev.Field)
	handlers.RespondJSON(w, http.StatusOK, form)
}
