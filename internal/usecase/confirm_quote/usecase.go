package confirm_quote

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/integrations/mailer"
	"github.com/m04kA/SMC-QuoteService/internal/service/guard"
)

const emailKind = "quote"

// UseCase use case для подтверждения заявки и отправки письма клиенту
type UseCase struct {
	store        QuoteStore
	pricer       Pricer
	mailer       Mailer
	metrics      Metrics
	templateID   string
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store QuoteStore,
	pricer Pricer,
	mailer Mailer,
	metrics Metrics,
	templateID string,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		pricer:       pricer,
		mailer:       mailer,
		metrics:      metrics,
		templateID:   templateID,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Preview итог заявки без отправки письма
func (uc *UseCase) Preview(ctx context.Context, req *Request) (*Response, error) {
	q := uc.store.Snapshot(ctx, req.SessionID)
	if err := guard.Validate(q, domain.StepConfirmation); err != nil {
		return nil, err
	}

	price := uc.pricer.Price(q.Plan, q.Car, q.Personal)
	return &Response{MonthlyPrice: price, Params: BuildParams(q, price, uc.timeProvider.Now())}, nil
}

// Execute выполняет use case подтверждения заявки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmQuote: session=%s", req.SessionID)

	// 1. Все предыдущие шаги должны быть заполнены в том же снимке, из которого строится письмо
	q := uc.store.Snapshot(ctx, req.SessionID)
	if err := guard.Validate(q, domain.StepConfirmation); err != nil {
		uc.logger.Warn("ConfirmQuote: session=%s: %v", req.SessionID, err)
		return nil, err
	}

	// 2. Цена считается тем же расчётом, что и на шаге выбора плана
	price := uc.pricer.Price(q.Plan, q.Car, q.Personal)
	params := BuildParams(q, price, uc.timeProvider.Now())

	// 3. Письмо клиенту
	err := uc.mailer.Send(ctx, mailer.Message{
		TemplateID: uc.templateID,
		ToName:     q.Personal.FullName(),
		ToEmail:    q.Personal.Email,
		Params:     params,
	})
	if err != nil {
		uc.logger.Error("ConfirmQuote: failed to send email for session=%s: %v", req.SessionID, err)
		uc.metrics.ObserveEmail(emailKind, "error")
		return nil, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	uc.metrics.ObserveEmail(emailKind, "ok")

	uc.logger.Info("ConfirmQuote: session=%s confirmed, plan=%s price=%d", req.SessionID, q.Plan.Name, price)
	return &Response{MonthlyPrice: price, Params: params}, nil
}
