package session

import (
	"context"
	"database/sql"
	"sync"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type countingMetrics struct {
	mu     sync.Mutex
	errors map[string]int
}

func (m *countingMetrics) ObserveStorageError(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.errors == nil {
		m.errors = make(map[string]int)
	}
	m.errors[operation]++
}

type execCall struct {
	query string
	args  []interface{}
}

// recordingDB записывает выполненные запросы. QueryRowContext не поддерживается.
type recordingDB struct {
	calls    []execCall
	affected int64
	err      error
}

func (d *recordingDB) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	d.calls = append(d.calls, execCall{query: query, args: args})
	if d.err != nil {
		return nil, d.err
	}
	return driverResult(d.affected), nil
}

func (d *recordingDB) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	panic("recordingDB: QueryRowContext is not supported")
}

type driverResult int64

func (r driverResult) LastInsertId() (int64, error) { return 0, nil }
func (r driverResult) RowsAffected() (int64, error) { return int64(r), nil }

type failingStorage struct {
	err error
}

func (s failingStorage) Get(context.Context, string, string) ([]byte, error) { return nil, s.err }
func (s failingStorage) Set(context.Context, string, string, []byte) error  { return s.err }
func (s failingStorage) Clear(context.Context, string) error                { return s.err }
