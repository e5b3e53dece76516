package submit_car_form

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-QuoteService/internal/api/middleware"
	"github.com/m04kA/SMC-QuoteService/internal/service/carform"
)

const (
	msgFormIncomplete = "complete marca, modelo, versión, año y uso del vehículo"
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

// Handle POST /api/v1/sessions/{sessionId}/car-form/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	car, err := h.form.Submit(r.Context(), sessionID, middleware.IsOffline(r.Context()))
	if err != nil {
		if errors.Is(err, carform.ErrFormIncomplete) {
			h.logger.Warn("POST /sessions/{id}/car-form/submit - Form incomplete: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgFormIncomplete)
			return
		}
		h.logger.Error("POST /sessions/{id}/car-form/submit - Failed to submit form: session=%s error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /sessions/{id}/car-form/submit - Car data saved: session=%s brand=%s model=%s",
		sessionID, car.Brand, car.Model)
	handlers.RespondJSON(w, http.StatusOK, car)
}
