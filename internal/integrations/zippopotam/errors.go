package zippopotam

import "errors"

var (
	// ErrNotFound возвращается, когда индекс не найден
	ErrNotFound = errors.New("zippopotam client: postal code not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("zippopotam client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("zippopotam client: invalid response")
)
