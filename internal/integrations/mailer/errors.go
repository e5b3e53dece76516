package mailer

import "errors"

var (
	// ErrSendFailed возвращается, если письмо не принято SendGrid
	ErrSendFailed = errors.New("mailer client: send failed")
	// ErrNotConfigured возвращается, если не задан ключ API или шаблон
	ErrNotConfigured = errors.New("mailer client: not configured")
)
