package catalog

import "github.com/m04kA/SMC-QuoteService/internal/domain"

// Ключи кэша справочников в хранилище сессии
const (
	keyBrands   = "marcas"
	keyModels   = "modelos"
	keyVersions = "versiones"
)

type BrandsRequest struct {
	SessionID string
	Offline   bool
}

type ModelsRequest struct {
	SessionID string
	BrandID   int64
	// BrandName нужен для запроса во внешний каталог; без него используются встроенные данные
	BrandName string
	Offline   bool
}

type VersionsRequest struct {
	SessionID string
	ModelID   int64
	ModelName string
	// Year принимается, но комплектации по году не фильтруются: во встроенных данных нет годов выпуска
	Year    *int
	Offline bool
}

// Result список значений справочника с уведомлением о происхождении данных
type Result[T any] struct {
	Items  []T
	Notice domain.Notice
}
