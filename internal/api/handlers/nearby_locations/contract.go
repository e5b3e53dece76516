package nearby_locations

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

type Locations interface {
	Nearby(ctx context.Context, sessionID string, lat, lon float64) []domain.LocationData
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
