package guard

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

// QuoteStore источник снимка заявки
type QuoteStore interface {
	Snapshot(ctx context.Context, sessionID string) domain.Quote
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
