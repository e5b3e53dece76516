package select_plan

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-QuoteService/internal/service/guard"
	"github.com/m04kA/SMC-QuoteService/internal/service/plans"
)

const (
	msgPlanNotFound   = "plan no encontrado"
	msgStepNotAllowed = "complete los datos del vehículo y del asegurado"
)

type Handler struct {
	plans  Plans
	logger Logger
}

func NewHandler(plans Plans, logger Logger) *Handler {
	return &Handler{
		plans:  plans,
		logger: logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/plans/{planId}/select
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID, planID := vars["sessionId"], vars["planId"]

	plan, err := h.plans.Select(r.Context(), sessionID, planID)
	if err != nil {
		var redirect *guard.RedirectError
		switch {
		case errors.As(err, &redirect):
			h.logger.Warn("POST /sessions/{id}/plans/{planId}/select - Step not allowed: session=%s redirect=%s",
				sessionID, redirect.RedirectTo)
			handlers.RespondRedirect(w, msgStepNotAllowed, string(redirect.RedirectTo))
		case errors.Is(err, plans.ErrPlanNotFound):
			h.logger.Warn("POST /sessions/{id}/plans/{planId}/select - Plan not found: %s", planID)
			handlers.RespondNotFound(w, msgPlanNotFound)
		default:
			h.logger.Error("POST /sessions/{id}/plans/{planId}/select - Failed to select plan: session=%s error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/plans/{planId}/select - Plan selected: session=%s plan=%s price=%d",
		sessionID, plan.ID, plan.MonthlyPrice)
	handlers.RespondJSON(w, http.StatusOK, plan)
}
