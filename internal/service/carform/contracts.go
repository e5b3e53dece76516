package carform

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/service/catalog"
)

// Catalog справочник марок, моделей и комплектаций
type Catalog interface {
	Brands(ctx context.Context, req catalog.BrandsRequest) catalog.Result[domain.Brand]
	Models(ctx context.Context, req catalog.ModelsRequest) catalog.Result[domain.Model]
	Versions(ctx context.Context, req catalog.VersionsRequest) catalog.Result[domain.Version]
}

// QuoteStore хранилище заявки
type QuoteStore interface {
	GetCarData(ctx context.Context, sessionID string) *domain.CarData
	SetCarData(ctx context.Context, sessionID string, car domain.CarData)
}

// Cache сессионный JSON-кэш для состояния формы
type Cache interface {
	Load(ctx context.Context, sessionID, key string, dst interface{}) bool
	Save(ctx context.Context, sessionID, key string, v interface{})
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
