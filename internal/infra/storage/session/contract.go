package session

import (
	"context"
	"database/sql"
)

// Storage хранилище ключ/значение, ограниченное одной сессией заявки
type Storage interface {
	Get(ctx context.Context, sessionID, key string) ([]byte, error)
	Set(ctx context.Context, sessionID, key string, value []byte) error
	Clear(ctx context.Context, sessionID string) error
}

// DBExecutor интерфейс для выполнения запросов (*sql.DB, *sql.Tx)
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics учёт проглоченных ошибок хранилища
type Metrics interface {
	ObserveStorageError(operation string)
}
