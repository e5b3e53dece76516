package confirm_quote

import (
	"context"

	confirmQuoteUC "github.com/m04kA/SMC-QuoteService/internal/usecase/confirm_quote"
)

type UseCase interface {
	Execute(ctx context.Context, req *confirmQuoteUC.Request) (*confirmQuoteUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
