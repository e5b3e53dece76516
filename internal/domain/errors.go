package domain

import "errors"

var (
	// ErrUnknownStep возвращается для неизвестного имени шага
	ErrUnknownStep = errors.New("domain: unknown step")
)
