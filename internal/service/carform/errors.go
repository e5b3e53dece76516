package carform

import "errors"

var (
	// ErrUnknownField возвращается для неизвестного поля формы
	ErrUnknownField = errors.New("carform.service: unknown field")
	// ErrUnknownOption возвращается, если выбранного значения нет в загруженном списке
	ErrUnknownOption = errors.New("carform.service: option not in list")
	// ErrParentRequired возвращается при выборе модели без марки или комплектации без модели
	ErrParentRequired = errors.New("carform.service: parent field is not selected")
	// ErrInvalidValue возвращается для недопустимого значения поля
	ErrInvalidValue = errors.New("carform.service: invalid value")
	// ErrFormIncomplete возвращается при отправке незаполненной формы
	ErrFormIncomplete = errors.New("carform.service: form is incomplete")
)
