package pricing

import (
	"math"
	"strings"
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Engine расчёт ежемесячной цены плана. Один и тот же расчёт используется
// при выборе плана и в подтверждении заявки.
type Engine struct {
	clock TimeProvider
}

func NewEngine(clock TimeProvider) *Engine {
	return &Engine{clock: clock}
}

// Price цена плана для текущего календарного года. nil-сущности означают отсутствие данных.
func (e *Engine) Price(plan *domain.PlanData, car *domain.CarData, person *domain.PersonalData) int {
	return Calculate(plan, car, person, e.clock.Now().Year())
}

// Calculate чистая функция расчёта цены
func Calculate(plan *domain.PlanData, car *domain.CarData, person *domain.PersonalData, currentYear int) int {
	price := basePrice(plan)

	comercial := car.IsComercial()
	if comercial {
		price += roundHalfUp(float64(price)*comercialRate) + comercialFlatFee
	}

	if car != nil && car.Year != 0 {
		brackets := particularAgeBrackets
		if comercial {
			brackets = comercialAgeBrackets
		}
		price += ageFee(currentYear-car.Year, brackets)
	}

	if car != nil && isPremiumBrand(car.Brand) {
		price += premiumBrandFee
	}

	if car != nil && car.Version != nil && strings.Contains(strings.ToLower(*car.Version), fullVersionKeyword) {
		price += fullVersionFee
	}

	if person != nil && person.Locality != "" {
		locality := strings.ToLower(person.Locality)
		for _, rule := range localityRules {
			if rule.pattern.MatchString(locality) {
				price += rule.fee
			}
		}
	}

	if car != nil && car.GNC {
		price += gncFee
	}

	return price
}

func basePrice(plan *domain.PlanData) int {
	if plan == nil {
		return DefaultBasePrice
	}
	if base, ok := basePrices[plan.PlanType]; ok {
		return base
	}
	if plan.BasePrice != 0 {
		return plan.BasePrice
	}
	if plan.Price != 0 {
		return plan.Price
	}
	return DefaultBasePrice
}

func ageFee(age int, brackets []ageBracket) int {
	for _, b := range brackets {
		if age <= b.maxAge {
			return b.fee
		}
	}
	return 0
}

func isPremiumBrand(brand string) bool {
	if brand == "" {
		return false
	}
	lower := strings.ToLower(brand)
	for _, b := range premiumBrands {
		if strings.Contains(lower, b) {
			return true
		}
	}
	return false
}

// roundHalfUp округление половин вверх (к +∞)
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
