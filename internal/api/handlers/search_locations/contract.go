package search_locations

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/service/location"
)

type Locations interface {
	Search(ctx context.Context, req location.SearchRequest) location.Result
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
