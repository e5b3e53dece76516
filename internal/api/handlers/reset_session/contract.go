package reset_session

import "context"

type QuoteStore interface {
	Reset(ctx context.Context, sessionID string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
