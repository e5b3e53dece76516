package domain

import "strings"

// Usage назначение использования автомобиля
type Usage string

const (
	UsageParticular Usage = "particular"
	UsageComercial  Usage = "comercial"
)

// CarData данные автомобиля (шаг 1)
type CarData struct {
	BrandID   int64   `json:"brandId"`
	Brand     string  `json:"brand"`
	ModelID   int64   `json:"modelId"`
	Model     string  `json:"model"`
	VersionID *int64  `json:"versionId,omitempty"`
	Version   *string `json:"version,omitempty"`
	Year      int     `json:"year"`
	GNC       bool    `json:"gnc"`
	Usage     Usage   `json:"usage"`
}

// IsComplete марка, модель, год и назначение заполнены
func (c *CarData) IsComplete() bool {
	if c == nil {
		return false
	}
	return c.BrandID != 0 &&
		notBlank(c.Brand) &&
		c.ModelID != 0 &&
		notBlank(c.Model) &&
		c.Year != 0 &&
		notBlank(string(c.Usage))
}

// IsComercial коммерческое использование
func (c *CarData) IsComercial() bool {
	return c != nil && c.Usage == UsageComercial
}

// PersonalData контактные данные (шаг 2)
type PersonalData struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	PostalCode string `json:"postalCode"`
	Locality   string `json:"locality"`
}

// IsComplete все шесть полей непустые после trim
func (p *PersonalData) IsComplete() bool {
	if p == nil {
		return false
	}
	return notBlank(p.FirstName) &&
		notBlank(p.LastName) &&
		notBlank(p.Email) &&
		notBlank(p.Phone) &&
		notBlank(p.PostalCode) &&
		notBlank(p.Locality)
}

// FullName имя и фамилия через пробел
func (p *PersonalData) FullName() string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// PlanData выбранный план страхования (шаг 3)
type PlanData struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PlanType    string   `json:"planType"`
	Price       int      `json:"price"`
	BasePrice   int      `json:"basePrice,omitempty"`
	Features    []string `json:"features,omitempty"`
	Recommended bool     `json:"recommended,omitempty"`
}

func (p *PlanData) IsComplete() bool {
	if p == nil {
		return false
	}
	return notBlank(p.Name) && notBlank(p.PlanType) && p.Price != 0
}

// PaymentData платёжные данные, шаги не блокирует
type PaymentData struct {
	Name           string `json:"name"`
	CardNumber     string `json:"cardNumber,omitempty"`
	CardHolderName string `json:"cardHolderName,omitempty"`
	ExpiryDate     string `json:"expiryDate,omitempty"`
	CVV            string `json:"cvv,omitempty"`
}

// Quote снимок всех сущностей заявки одной сессии
type Quote struct {
	Car      *CarData      `json:"carData,omitempty"`
	Personal *PersonalData `json:"personalData,omitempty"`
	Plan     *PlanData     `json:"planData,omitempty"`
	Payment  *PaymentData  `json:"paymentData,omitempty"`
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
