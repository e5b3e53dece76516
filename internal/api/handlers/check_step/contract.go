package check_step

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/service/guard"
)

type Guard interface {
	Check(ctx context.Context, sessionID string, step domain.Step) guard.Decision
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
