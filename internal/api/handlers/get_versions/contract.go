package get_versions

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/service/catalog"
)

type Catalog interface {
	Versions(ctx context.Context, req catalog.VersionsRequest) catalog.Result[domain.Version]
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
