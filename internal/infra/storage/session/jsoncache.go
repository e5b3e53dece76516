package session

import (
	"context"
	"encoding/json"
	"errors"
)

// JSONCache JSON-обёртка над Storage. Ошибки хранилища логируются и не возвращаются:
// отсутствие кэша никогда не должно ломать сценарий пользователя.
type JSONCache struct {
	storage Storage
	logger  Logger
	metrics Metrics
}

func NewJSONCache(storage Storage, logger Logger, metrics Metrics) *JSONCache {
	return &JSONCache{
		storage: storage,
		logger:  logger,
		metrics: metrics,
	}
}

// Load читает ключ в dst. false, если ключа нет или его не удалось прочитать.
func (c *JSONCache) Load(ctx context.Context, sessionID, key string, dst interface{}) bool {
	raw, err := c.storage.Get(ctx, sessionID, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			c.logger.Warn("Session storage read failed: session=%s key=%s error=%v", sessionID, key, err)
			c.metrics.ObserveStorageError("get")
		}
		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		c.logger.Warn("Session storage value is corrupted: session=%s key=%s error=%v", sessionID, key, err)
		c.metrics.ObserveStorageError("decode")
		return false
	}

	return true
}

// Save сериализует v и пишет под ключом. Ошибки проглатываются.
func (c *JSONCache) Save(ctx context.Context, sessionID, key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		c.logger.Warn("Session storage value not serializable: session=%s key=%s error=%v", sessionID, key, err)
		c.metrics.ObserveStorageError("encode")
		return
	}

	if err := c.storage.Set(ctx, sessionID, key, raw); err != nil {
		c.logger.Warn("Session storage write failed: session=%s key=%s error=%v", sessionID, key, err)
		c.metrics.ObserveStorageError("set")
	}
}

// Clear удаляет все ключи сессии. Ошибки проглатываются.
func (c *JSONCache) Clear(ctx context.Context, sessionID string) {
	if err := c.storage.Clear(ctx, sessionID); err != nil {
		c.logger.Warn("Session storage clear failed: session=%s error=%v", sessionID, err)
		c.metrics.ObserveStorageError("clear")
	}
}
