package update_car_form

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/service/carform"
)

type CarForm interface {
	Apply(ctx context.Context, sessionID string, ev carform.Event, offline bool) (*carform.Form, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
