package select_plan

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/service/plans"
)

type Plans interface {
	Select(ctx context.Context, sessionID, planID string) (*plans.PricedPlan, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
