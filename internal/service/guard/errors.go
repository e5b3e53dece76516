package guard

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

var (
	// ErrStepNotAllowed возвращается, если предыдущие шаги заявки не заполнены
	ErrStepNotAllowed = errors.New("guard.service: step not allowed")
)

// RedirectError запрещённый переход с шагом, на который нужно вернуться
type RedirectError struct {
	Step       domain.Step
	RedirectTo domain.Step
}

func (e *RedirectError) Error() string {
	return fmt.Sprintf("%v: %s requires %s", ErrStepNotAllowed, e.Step, e.RedirectTo)
}

func (e *RedirectError) Unwrap() error {
	return ErrStepNotAllowed
}
