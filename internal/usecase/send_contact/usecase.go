package send_contact

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/integrations/mailer"
)

const emailKind = "contact"

// UseCase use case для отправки обращения из формы контактов
type UseCase struct {
	mailer       Mailer
	metrics      Metrics
	templateID   string
	toEmail      string
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(mailer Mailer, metrics Metrics, templateID, toEmail string, logger Logger) *UseCase {
	return &UseCase{
		mailer:       mailer,
		metrics:      metrics,
		templateID:   templateID,
		toEmail:      toEmail,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute проверяет форму и отправляет письмо на адрес поддержки
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SendContact: validation failed: %v", err)
		return err
	}

	phone := req.Phone
	if phone == "" {
		phone = DefaultPhone
	}

	// 2. Письмо в поддержку, ответ уходит автору обращения
	params := map[string]string{
		"from_name":    req.Name,
		"from_email":   req.Email,
		"phone":        phone,
		"subject_type": subjectLabel(req.Subject),
		"message":      req.Message,
		"to_email":     uc.toEmail,
		"reply_to":     req.Email,
		"date":         domain.FormatDate(uc.timeProvider.Now()),
	}

	err := uc.mailer.Send(ctx, mailer.Message{
		TemplateID: uc.templateID,
		ToEmail:    uc.toEmail,
		ReplyTo:    req.Email,
		Params:     params,
	})
	if err != nil {
		uc.logger.Error("SendContact: failed to send message from %s: %v", req.Email, err)
		uc.metrics.ObserveEmail(emailKind, "error")
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	uc.metrics.ObserveEmail(emailKind, "ok")

	uc.logger.Info("SendContact: message from %s sent, subject=%s", req.Email, req.Subject)
	return nil
}
