package pricing

import (
	"regexp"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

// DefaultBasePrice база для плана без типа и без собственной цены
const DefaultBasePrice = 26000

var basePrices = map[string]int{
	domain.PlanTypeBasic:        26000,
	domain.PlanTypeIntermediate: 37000,
	domain.PlanTypePremium:      52000,
}

const (
	comercialRate      = 0.18
	comercialFlatFee   = 6000
	premiumBrandFee    = 5000
	fullVersionFee     = 3000
	fullVersionKeyword = "full"
	gncFee             = 2000
)

// ageBracket надбавка для автомобилей не старше maxAge лет
type ageBracket struct {
	maxAge int
	fee    int
}

var (
	comercialAgeBrackets = []ageBracket{
		{maxAge: 5, fee: 3500},
		{maxAge: 10, fee: 2000},
		{maxAge: 20, fee: 1000},
	}
	particularAgeBrackets = []ageBracket{
		{maxAge: 5, fee: 2500},
		{maxAge: 10, fee: 1500},
		{maxAge: 20, fee: 800},
	}
)

var premiumBrands = []string{
	"toyota", "bmw", "mercedes", "audi", "honda", "volkswagen", "volvo",
	"ford", "jeep", "ram", "chevrolet", "peugeot", "renault", "citroen",
}

// localityRule надбавка за регион; правила суммируются
type localityRule struct {
	pattern *regexp.Regexp
	fee     int
}

var localityRules = []localityRule{
	{pattern: regexp.MustCompile(`funes`), fee: 2500},
	{pattern: regexp.MustCompile(`rosario`), fee: 4000},
	{pattern: regexp.MustCompile(`buenos aires|caba|capital|amba`), fee: 6000},
	{pattern: regexp.MustCompile(`la plata`), fee: 3500},
}
