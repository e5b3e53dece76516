package get_car_form

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/service/carform"
)

type CarForm interface {
	Load(ctx context.Context, sessionID string, offline bool) *carform.Form
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
