package domain

import "fmt"

// Step шаг мастера расчёта
type Step string

const (
	StepCar          Step = "car"
	StepPersonal     Step = "personal"
	StepPlan         Step = "plan"
	StepConfirmation Step = "confirmation"
)

// Steps шаги в порядке прохождения
var Steps = []Step{StepCar, StepPersonal, StepPlan, StepConfirmation}

// ParseStep разбирает имя шага из URL
func ParseStep(s string) (Step, error) {
	for _, step := range Steps {
		if string(step) == s {
			return step, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStep, s)
}
