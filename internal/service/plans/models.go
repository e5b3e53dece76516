package plans

import "github.com/m04kA/SMC-QuoteService/internal/domain"

// PricedPlan план каталога с ценой для текущей заявки
type PricedPlan struct {
	domain.PlanData
	MonthlyPrice int `json:"monthlyPrice"`
}

type Listing struct {
	Plans []PricedPlan `json:"plans"`
	// SelectedID ранее выбранный план сессии
	SelectedID string `json:"selectedId,omitempty"`
}
