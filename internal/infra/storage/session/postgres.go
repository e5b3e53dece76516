package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-QuoteService/pkg/psqlbuilder"
)

const (
	entriesTable = "session_entries"

	columnSessionID = "session_id"
	columnKey       = "entry_key"
	columnValue     = "entry_value"
	columnExpiresAt = "expires_at"
)

const createEntriesTable = `
CREATE TABLE IF NOT EXISTS session_entries (
	session_id  TEXT        NOT NULL,
	entry_key   TEXT        NOT NULL,
	entry_value TEXT        NOT NULL,
	expires_at  TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (session_id, entry_key)
);
CREATE INDEX IF NOT EXISTS idx_session_entries_expires_at ON session_entries (expires_at);`

// PostgresStorage хранилище сессий в таблице session_entries
type PostgresStorage struct {
	db  DBExecutor
	ttl time.Duration
	now func() time.Time
}

func NewPostgresStorage(db DBExecutor, ttl time.Duration) *PostgresStorage {
	return &PostgresStorage{
		db:  db,
		ttl: ttl,
		now: time.Now,
	}
}

// EnsureSchema создаёт таблицу, если её ещё нет
func (s *PostgresStorage) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createEntriesTable); err != nil {
		return fmt.Errorf("%w: EnsureSchema: %v", ErrExecQuery, err)
	}
	return nil
}

func (s *PostgresStorage) Get(ctx context.Context, sessionID, key string) ([]byte, error) {
	if sessionID == "" {
		return nil, ErrInvalidSession
	}

	query, args, err := psqlbuilder.Select(columnValue).
		From(entriesTable).
		Where(squirrel.Eq{columnSessionID: sessionID, columnKey: key}).
		Where(squirrel.Gt{columnExpiresAt: s.now()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: Get - scan value: %v", ErrScanRow, err)
	}

	return []byte(value), nil
}

// Set upsert значения. Срок жизни всех ключей сессии продлевается вместе с записью.
func (s *PostgresStorage) Set(ctx context.Context, sessionID, key string, value []byte) error {
	if sessionID == "" {
		return ErrInvalidSession
	}

	expiresAt := s.now().Add(s.ttl)

	query, args, err := psqlbuilder.Insert(entriesTable).
		Columns(columnSessionID, columnKey, columnValue, columnExpiresAt).
		Values(sessionID, key, string(value), expiresAt).
		Suffix("ON CONFLICT (session_id, entry_key) DO UPDATE SET entry_value = EXCLUDED.entry_value, expires_at = EXCLUDED.expires_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrExecQuery, err)
	}

	touch, touchArgs, err := psqlbuilder.Update(entriesTable).
		Set(columnExpiresAt, expiresAt).
		Where(squirrel.Eq{columnSessionID: sessionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Set - build touch query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, touch, touchArgs...); err != nil {
		return fmt.Errorf("%w: Set - execute touch: %v", ErrExecQuery, err)
	}

	return nil
}

func (s *PostgresStorage) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrInvalidSession
	}

	query, args, err := psqlbuilder.Delete(entriesTable).
		Where(squirrel.Eq{columnSessionID: sessionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Clear - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Clear - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// PurgeExpired удаляет истёкшие записи, возвращает количество удалённых строк
func (s *PostgresStorage) PurgeExpired(ctx context.Context) (int64, error) {
	query, args, err := psqlbuilder.Delete(entriesTable).
		Where(squirrel.LtOrEq{columnExpiresAt: s.now()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: PurgeExpired - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: PurgeExpired - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: PurgeExpired - rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}
