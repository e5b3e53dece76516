package guard

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

// Decision результат проверки перехода на шаг
type Decision struct {
	Allowed bool
	// RedirectTo первый незаполненный шаг, если переход запрещён
	RedirectTo domain.Step
}

// Check проверяет, можно ли перейти на шаг при данном состоянии заявки.
// Запрещённый переход перенаправляет на первый незаполненный шаг по порядку.
func Check(q domain.Quote, step domain.Step) Decision {
	carOK := q.Car.IsComplete()
	personalOK := q.Personal.IsComplete()
	planOK := q.Plan.IsComplete()

	switch step {
	case domain.StepPersonal:
		if !carOK {
			return redirect(domain.StepCar)
		}
	case domain.StepPlan:
		if !carOK {
			return redirect(domain.StepCar)
		}
		if !personalOK {
			return redirect(domain.StepPersonal)
		}
	case domain.StepConfirmation:
		if !carOK {
			return redirect(domain.StepCar)
		}
		if !personalOK {
			return redirect(domain.StepPersonal)
		}
		if !planOK {
			return redirect(domain.StepPlan)
		}
	}

	return Decision{Allowed: true}
}

func redirect(step domain.Step) Decision {
	return Decision{Allowed: false, RedirectTo: step}
}

// Validate то же, что Check, но запрещённый переход возвращается как *RedirectError.
// Вызывающий проверяет тот же снимок заявки, из которого потом читает данные.
func Validate(q domain.Quote, step domain.Step) error {
	decision := Check(q, step)
	if decision.Allowed {
		return nil
	}
	return &RedirectError{Step: step, RedirectTo: decision.RedirectTo}
}

// Service проверка шагов по текущему состоянию сессии
type Service struct {
	store  QuoteStore
	logger Logger
}

func NewService(store QuoteStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

func (s *Service) Check(ctx context.Context, sessionID string, step domain.Step) Decision {
	decision := Check(s.store.Snapshot(ctx, sessionID), step)
	if !decision.Allowed {
		s.logger.Info("Step %s not allowed for session=%s, redirecting to %s", step, sessionID, decision.RedirectTo)
	}
	return decision
}

// Require то же, что Check, но запрещённый переход возвращается как *RedirectError
func (s *Service) Require(ctx context.Context, sessionID string, step domain.Step) error {
	decision := s.Check(ctx, sessionID, step)
	if decision.Allowed {
		return nil
	}
	return &RedirectError{Step: step, RedirectTo: decision.RedirectTo}
}
