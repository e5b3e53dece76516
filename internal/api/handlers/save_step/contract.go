package save_step

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

type QuoteStore interface {
	SetCarData(ctx context.Context, sessionID string, car domain.CarData)
	SetPersonalData(ctx context.Context, sessionID string, personal domain.PersonalData)
	SetPlanData(ctx context.Context, sessionID string, plan domain.PlanData)
	SetPaymentData(ctx context.Context, sessionID string, payment domain.PaymentData)
}

type Guard interface {
	Require(ctx context.Context, sessionID string, step domain.Step) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
