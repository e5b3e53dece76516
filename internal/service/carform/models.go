package carform

import "github.com/m04kA/SMC-QuoteService/internal/domain"

// keyForm ключ состояния формы в хранилище сессии
const keyForm = "carForm"

// Field редактируемое поле формы
type Field string

const (
	FieldBrand   Field = "brand"
	FieldModel   Field = "model"
	FieldVersion Field = "version"
	FieldYear    Field = "year"
	FieldGNC     Field = "gnc"
	FieldUsage   Field = "usage"
)

// Form состояние формы автомобиля.
// Флаги *ModifiedByUser выставляются при первом изменении поля пользователем и сами не сбрасываются.
type Form struct {
	Brand       *domain.Brand   `json:"brand"`
	Model       *domain.Model   `json:"model"`
	Version     *domain.Version `json:"version"`
	VersionText string          `json:"versionText,omitempty"`
	Year        int             `json:"year,omitempty"`
	GNC         bool            `json:"gnc"`
	Usage       domain.Usage    `json:"usage,omitempty"`

	BrandModifiedByUser bool `json:"brandModifiedByUser"`
	ModelModifiedByUser bool `json:"modelModifiedByUser"`

	Models   []domain.Model   `json:"models"`
	Versions []domain.Version `json:"versions"`
	Notice   domain.Notice    `json:"notice,omitempty"`
}

// Event изменение одного поля формы пользователем
type Event struct {
	Field Field `json:"field"`
	// ID марки, модели или комплектации; 0 снимает выбор
	ID int64 `json:"id,omitempty"`
	// Value назначение или комплектация, введённая вручную
	Value string `json:"value,omitempty"`
	Year  int    `json:"year,omitempty"`
	GNC   bool   `json:"gnc,omitempty"`
}
