package save_step

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/service/guard"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgUnknownEntity      = "paso desconocido"
	msgStepNotAllowed     = "complete los pasos anteriores antes de continuar"
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

// Handle PUT /api/v1/sessions/{sessionId}/steps/{entity}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID, entity := vars["sessionId"], vars["entity"]

	step, ok := requiredStep[entity]
	if !ok {
		h.logger.Warn("PUT /sessions/{id}/steps/{entity} - Unknown entity: %q", entity)
		handlers.RespondNotFound(w, msgUnknownEntity)
		return
	}

	if err := h.guard.Require(r.Context(), sessionID, step); err != nil {
		var redirect *guard.RedirectError
		if errors.As(err, &redirect) {
			h.logger.Warn("PUT /sessions/{id}/steps/{entity} - Step not allowed: session=%s entity=%s redirect=%s",
				sessionID, entity, redirect.RedirectTo)
			handlers.RespondRedirect(w, msgStepNotAllowed, string(redirect.RedirectTo))
			return
		}
		h.logger.Error("PUT /sessions/{id}/steps/{entity} - Guard failed: session=%s error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	var saved interface{}
	switch entity {
	case entityCar:
		var car domain.CarData
		if !h.decode(w, r, &car) {
			return
		}
		h.store.SetCarData(r.Context(), sessionID, car)
		saved = car
	case entityPersonal:
		var personal domain.PersonalData
		if !h.decode(w, r, &personal) {
			return
		}
		h.store.SetPersonalData(r.Context(), sessionID, personal)
		saved = personal
	case entityPlan:
		var plan domain.PlanData
		if !h.decode(w, r, &plan) {
			return
		}
		h.store.SetPlanData(r.Context(), sessionID, plan)
		saved = plan
	case entityPayment:
		var payment domain.PaymentData
		if !h.decode(w, r, &payment) {
			return
		}
		h.store.SetPaymentData(r.Context(), sessionID, payment)
		saved = payment
	}

	h.logger.Info("PUT /sessions/{id}/steps/{entity} - Step saved: session=%s entity=%s", sessionID, entity)
	handlers.RespondJSON(w, http.StatusOK, saved)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := handlers.DecodeJSON(r, dst); err != nil {
		h.logger.Warn("PUT /sessions/{id}/steps/{entity} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return false
	}
	return true
}
