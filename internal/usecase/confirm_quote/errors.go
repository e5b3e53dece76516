package confirm_quote

import "errors"

var (
	// ErrSendFailed возвращается, если письмо с подтверждением не отправлено; повтор выполняет пользователь
	ErrSendFailed = errors.New("confirm_quote: confirmation email not sent")
)
