package catalog

import (
	"context"
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/integrations/vehiclecatalog"
)

// VehicleCatalog внешний каталог марок и моделей
type VehicleCatalog interface {
	GetMakes(ctx context.Context) ([]vehiclecatalog.Make, error)
	GetModelsForMake(ctx context.Context, makeName string) ([]vehiclecatalog.Model, error)
}

// Cache сессионный JSON-кэш
type Cache interface {
	Load(ctx context.Context, sessionID, key string, dst interface{}) bool
	Save(ctx context.Context, sessionID, key string, v interface{})
}

// Metrics учёт обращений к каталогу и переходов на встроенные данные
type Metrics interface {
	ObserveRemote(source, outcome string)
	ObserveFallback(resolver, reason string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
