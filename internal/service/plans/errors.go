package plans

import "errors"

var (
	// ErrPlanNotFound возвращается, если плана нет в каталоге
	ErrPlanNotFound = errors.New("plans.service: plan not found")
)
