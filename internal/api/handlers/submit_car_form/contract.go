package submit_car_form

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

type CarForm interface {
	Submit(ctx context.Context, sessionID string, offline bool) (domain.CarData, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
