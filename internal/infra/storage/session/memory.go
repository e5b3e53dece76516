package session

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// entries записи одной сессии
type entries struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// MemoryStorage хранилище в памяти процесса. Сессия истекает через ttl после последней записи.
type MemoryStorage struct {
	cache      *cache.Cache
	maxEntries int
	// создание записей сессии сериализовано, чтобы два параллельных Set не потеряли друг друга
	mu sync.Mutex
}

// NewMemoryStorage maxEntries <= 0 снимает ограничение на число ключей в сессии
func NewMemoryStorage(ttl time.Duration, maxEntries int) *MemoryStorage {
	cleanup := ttl / 2
	if cleanup <= 0 {
		cleanup = time.Minute
	}
	return &MemoryStorage{
		cache:      cache.New(ttl, cleanup),
		maxEntries: maxEntries,
	}
}

func (s *MemoryStorage) Get(_ context.Context, sessionID, key string) ([]byte, error) {
	if sessionID == "" {
		return nil, ErrInvalidSession
	}

	e := s.lookup(sessionID)
	if e == nil {
		return nil, ErrNotFound
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	value, ok := e.values[key]
	if !ok {
		return nil, ErrNotFound
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *MemoryStorage) Set(_ context.Context, sessionID, key string, value []byte) error {
	if sessionID == "" {
		return ErrInvalidSession
	}

	s.mu.Lock()
	e := s.lookup(sessionID)
	if e == nil {
		e = &entries{values: make(map[string][]byte)}
	}
	// продлеваем жизнь сессии при каждой записи
	s.cache.SetDefault(sessionID, e)
	s.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, exists := e.values[key]; !exists && s.maxEntries > 0 && len(e.values) >= s.maxEntries {
		return ErrQuotaExceeded
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	e.values[key] = stored

	return nil
}

func (s *MemoryStorage) Clear(_ context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrInvalidSession
	}
	s.cache.Delete(sessionID)
	return nil
}

// SessionCount количество живых сессий
func (s *MemoryStorage) SessionCount() int {
	return s.cache.ItemCount()
}

func (s *MemoryStorage) lookup(sessionID string) *entries {
	v, ok := s.cache.Get(sessionID)
	if !ok {
		return nil
	}
	e, _ := v.(*entries)
	return e
}
