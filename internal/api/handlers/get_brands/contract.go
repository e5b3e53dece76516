package get_brands

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/service/catalog"
)

type Catalog interface {
	Brands(ctx context.Context, req catalog.BrandsRequest) catalog.Result[domain.Brand]
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
