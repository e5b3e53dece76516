package location

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/integrations/geonames"
	"github.com/m04kA/SMC-QuoteService/internal/integrations/georef"
	"github.com/m04kA/SMC-QuoteService/internal/integrations/zippopotam"
)

// Georef поиск населённых пунктов и их почтовых индексов
type Georef interface {
	SearchLocalities(ctx context.Context, name string) ([]georef.Locality, error)
	GetPostalCodes(ctx context.Context, localityID string) ([]string, error)
}

// Zippopotam поиск по точному почтовому индексу
type Zippopotam interface {
	Lookup(ctx context.Context, code string) (*zippopotam.PostalCode, error)
}

// GeoNames обратный поиск почтовых индексов по координатам
type GeoNames interface {
	FindNearbyPostalCodes(ctx context.Context, lat, lon float64, radiusKm, maxRows int) ([]geonames.PostalCode, error)
}

// Cache сессионный JSON-кэш
type Cache interface {
	Load(ctx context.Context, sessionID, key string, dst interface{}) bool
	Save(ctx context.Context, sessionID, key string, v interface{})
}

type Metrics interface {
	ObserveRemote(source, outcome string)
	ObserveFallback(resolver, reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
