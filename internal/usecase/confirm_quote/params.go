package confirm_quote

import (
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

// BuildParams плоский набор параметров шаблона письма с подтверждением
func BuildParams(q domain.Quote, price int, now time.Time) map[string]string {
	car := q.Car
	if car == nil {
		car = &domain.CarData{}
	}
	person := q.Personal
	if person == nil {
		person = &domain.PersonalData{}
	}

	var planName string
	if q.Plan != nil {
		planName = q.Plan.Name
	}

	return map[string]string{
		"email":             person.Email,
		"customer_name":     person.FirstName + " " + person.LastName,
		"plan_name":         planName,
		"plan_price":        domain.FormatMonthlyPrice(price),
		"car_brand":         car.Brand,
		"car_model":         car.Model,
		"car_version":       deref(car.Version),
		"car_year":          yearString(car.Year),
		"car_usage":         usageLabel(car),
		"customer_phone":    person.Phone,
		"customer_location": person.Locality + " (" + person.PostalCode + ")",
		"request_date":      domain.FormatDate(now),
		"features_list":     strings.Join(domain.PlanFeatures(q.Plan), ", "),
		"subject":           Subject,
	}
}

func usageLabel(car *domain.CarData) string {
	if car.Usage == domain.UsageParticular {
		return "Particular"
	}
	return "Comercial"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func yearString(year int) string {
	if year == 0 {
		return ""
	}
	return strconv.Itoa(year)
}
