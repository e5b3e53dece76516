package plans

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/service/guard"
)

// Service выбор плана (шаг 3)
type Service struct {
	store  QuoteStore
	pricer Pricer
	logger Logger
}

func NewService(store QuoteStore, pricer Pricer, logger Logger) *Service {
	return &Service{
		store:  store,
		pricer: pricer,
		logger: logger,
	}
}

// List планы каталога с ценами по данным заявки
func (s *Service) List(ctx context.Context, sessionID string) (*Listing, error) {
	q := s.store.Snapshot(ctx, sessionID)
	if err := guard.Validate(q, domain.StepPlan); err != nil {
		return nil, err
	}

	catalog := domain.PlanCatalog()
	listing := &Listing{Plans: make([]PricedPlan, 0, len(catalog))}
	for i := range catalog {
		listing.Plans = append(listing.Plans, PricedPlan{
			PlanData:     catalog[i],
			MonthlyPrice: s.pricer.Price(&catalog[i], q.Car, q.Personal),
		})
	}
	if q.Plan != nil {
		listing.SelectedID = q.Plan.ID
	}

	return listing, nil
}

// Select сохраняет план каталога в заявку.
// Цена считается по тому же снимку, на котором прошла проверка шага.
func (s *Service) Select(ctx context.Context, sessionID, planID string) (*PricedPlan, error) {
	q := s.store.Snapshot(ctx, sessionID)
	if err := guard.Validate(q, domain.StepPlan); err != nil {
		return nil, err
	}

	plan, ok := domain.FindPlan(planID)
	if !ok {
		s.logger.Warn("Plan %q not found, session=%s", planID, sessionID)
		return nil, ErrPlanNotFound
	}

	s.store.SetPlanData(ctx, sessionID, plan)

	return &PricedPlan{
		PlanData:     plan,
		MonthlyPrice: s.pricer.Price(&plan, q.Car, q.Personal),
	}, nil
}
