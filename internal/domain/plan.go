package domain

// Типы планов
const (
	PlanTypeBasic        = "Básico"
	PlanTypeIntermediate = "Intermedio"
	PlanTypePremium      = "Premium"
)

// DefaultPlanFeatures возможности плана, если у него нет собственного списка
var DefaultPlanFeatures = []string{"Cobertura básica incluida"}

// PlanCatalog планы, доступные для выбора
func PlanCatalog() []PlanData {
	return []PlanData{
		{
			ID:          "plan1",
			Name:        "Plan Básico",
			Description: "Cobertura contra terceros completos + Cristales",
			PlanType:    PlanTypeBasic,
			Price:       35000,
			Features:    []string{"Responsabilidad Civil", "Cristales", "Servicio de Grúa"},
		},
		{
			ID:          "plan2",
			Name:        "Plan Intermedio",
			Description: "Cobertura completa con franquicia reducida",
			PlanType:    PlanTypeIntermediate,
			Price:       52000,
			Features:    []string{"Todo Riesgo con Franquicia", "Robo Total", "Incendio Total", "Granizo", "Asistencia 24hs"},
			Recommended: true,
		},
		{
			ID:          "plan3",
			Name:        "Plan Premium",
			Description: "Cobertura total sin franquicia + beneficios exclusivos",
			PlanType:    PlanTypePremium,
			Price:       78000,
			Features:    []string{"Todo Riesgo sin Franquicia", "Auto Sustituto", "Gastos Médicos", "Robo Parcial", "Protección Legal"},
		},
	}
}

// FindPlan ищет план каталога по идентификатору
func FindPlan(id string) (PlanData, bool) {
	for _, p := range PlanCatalog() {
		if p.ID == id {
			return p, true
		}
	}
	return PlanData{}, false
}

// PlanFeatures возможности плана; без собственного списка берутся возможности плана каталога того же типа
func PlanFeatures(plan *PlanData) []string {
	if plan == nil {
		return DefaultPlanFeatures
	}
	if len(plan.Features) > 0 {
		return plan.Features
	}
	for _, p := range PlanCatalog() {
		if p.PlanType == plan.PlanType {
			return p.Features
		}
	}
	return DefaultPlanFeatures
}
