package send_contact

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных формы
	ErrInvalidInput = errors.New("send_contact: invalid input data")

	// ErrSendFailed возвращается, если письмо не отправлено
	ErrSendFailed = errors.New("send_contact: message not sent")
)
