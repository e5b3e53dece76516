package plans

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

type QuoteStore interface {
	Snapshot(ctx context.Context, sessionID string) domain.Quote
	SetPlanData(ctx context.Context, sessionID string, plan domain.PlanData)
}

// Pricer расчёт цены плана
type Pricer interface {
	Price(plan *domain.PlanData, car *domain.CarData, person *domain.PersonalData) int
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
