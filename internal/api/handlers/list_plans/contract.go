package list_plans

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/service/plans"
)

type Plans interface {
	List(ctx context.Context, sessionID string) (*plans.Listing, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
