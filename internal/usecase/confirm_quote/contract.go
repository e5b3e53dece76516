package confirm_quote

import (
	"context"
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/integrations/mailer"
)

// QuoteStore источник данных заявки
type QuoteStore interface {
	Snapshot(ctx context.Context, sessionID string) domain.Quote
}

// Pricer расчёт цены плана
type Pricer interface {
	Price(plan *domain.PlanData, car *domain.CarData, person *domain.PersonalData) int
}

// Mailer интерфейс отправки писем
type Mailer interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// Metrics учёт отправленных писем
type Metrics interface {
	ObserveEmail(kind, outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
