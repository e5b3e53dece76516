package domain

// Brand марка автомобиля
type Brand struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
}

// Model модель марки
type Model struct {
	ID      int64  `json:"id"`
	BrandID int64  `json:"marcaId"`
	Name    string `json:"nombre"`
}

// Version комплектация модели
type Version struct {
	ID           int64  `json:"id"`
	ModelID      int64  `json:"modeloId"`
	Name         string `json:"nombre"`
	Displacement string `json:"cilindrada,omitempty"`
	Fuel         string `json:"combustible,omitempty"`
	Transmission string `json:"transmision,omitempty"`
}

// Notice информационное сообщение о происхождении данных
type Notice string

const (
	NoticeNone             Notice = ""
	NoticeOfflineSavedData Notice = "offline_saved_data"
	NoticeNoData           Notice = "no_data"
	NoticeNoConnectivity   Notice = "no_connectivity"
)

// ModelYearsCount количество модельных лет в списке выбора
const ModelYearsCount = 25

// ModelYears последние ModelYearsCount лет, начиная с текущего
func ModelYears(currentYear int) []int {
	years := make([]int, 0, ModelYearsCount)
	for i := 0; i < ModelYearsCount; i++ {
		years = append(years, currentYear-i)
	}
	return years
}
