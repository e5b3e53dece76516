package get_models

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/service/catalog"
)

type Catalog interface {
	Models(ctx context.Context, req catalog.ModelsRequest) catalog.Result[domain.Model]
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
