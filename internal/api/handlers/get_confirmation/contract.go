package get_confirmation

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/usecase/confirm_quote"
)

type Confirmation interface {
	Preview(ctx context.Context, req *confirm_quote.Request) (*confirm_quote.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
