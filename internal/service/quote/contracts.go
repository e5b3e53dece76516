package quote

import "context"

// Cache сессионное JSON-хранилище, проглатывающее ошибки
type Cache interface {
	Load(ctx context.Context, sessionID, key string, dst interface{}) bool
	Save(ctx context.Context, sessionID, key string, v interface{})
	Clear(ctx context.Context, sessionID string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
