package send_contact

import (
	"context"

	sendContactUC "github.com/m04kA/SMC-QuoteService/internal/usecase/send_contact"
)

type UseCase interface {
	Execute(ctx context.Context, req *sendContactUC.Request) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
