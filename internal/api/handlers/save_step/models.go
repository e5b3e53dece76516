package save_step

import "github.com/m04kA/SMC-QuoteService/internal/domain"

// Сущности, сохраняемые через PUT /steps/{entity}
const (
	entityCar      = "car"
	entityPersonal = "personal"
	entityPlan     = "plan"
	entityPayment  = "payment"
)

// requiredStep шаг, который должен быть доступен для сохранения сущности
var requiredStep = map[string]domain.Step{
	entityCar:      domain.StepCar,
	entityPersonal: domain.StepPersonal,
	entityPlan:     domain.StepPlan,
	entityPayment:  domain.StepConfirmation,
}
