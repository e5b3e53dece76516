package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedBrand struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
}

func TestJSONCache_SaveLoad(t *testing.T) {
	ctx := context.Background()
	c := NewJSONCache(NewMemoryStorage(time.Minute, 0), nopLogger{}, &countingMetrics{})

	c.Save(ctx, "s1", "marcas", []cachedBrand{{ID: 1, Name: "Toyota"}})

	var got []cachedBrand
	require.True(t, c.Load(ctx, "s1", "marcas", &got))
	assert.Equal(t, []cachedBrand{{ID: 1, Name: "Toyota"}}, got)

	c.Clear(ctx, "s1")
	assert.False(t, c.Load(ctx, "s1", "marcas", &got))
}

func TestJSONCache_SwallowsStorageErrors(t *testing.T) {
	ctx := context.Background()
	metrics := &countingMetrics{}
	c := NewJSONCache(failingStorage{err: errors.New("backend down")}, nopLogger{}, metrics)

	var got []cachedBrand
	assert.NotPanics(t, func() {
		c.Save(ctx, "s1", "marcas", []cachedBrand{{ID: 1}})
		c.Clear(ctx, "s1")
	})
	assert.False(t, c.Load(ctx, "s1", "marcas", &got))

	assert.Equal(t, 1, metrics.errors["set"])
	assert.Equal(t, 1, metrics.errors["get"])
	assert.Equal(t, 1, metrics.errors["clear"])
}

func TestJSONCache_QuotaExceededIsSwallowed(t *testing.T) {
	ctx := context.Background()
	metrics := &countingMetrics{}
	c := NewJSONCache(NewMemoryStorage(time.Minute, 1), nopLogger{}, metrics)

	c.Save(ctx, "s1", "a", 1)
	c.Save(ctx, "s1", "b", 2)

	var v int
	assert.True(t, c.Load(ctx, "s1", "a", &v))
	assert.False(t, c.Load(ctx, "s1", "b", &v))
	assert.Equal(t, 1, metrics.errors["set"])
}

func TestJSONCache_CorruptedValue(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage(time.Minute, 0)
	metrics := &countingMetrics{}
	c := NewJSONCache(storage, nopLogger{}, metrics)

	require.NoError(t, storage.Set(ctx, "s1", "carData", []byte("{not json")))

	var v map[string]interface{}
	assert.False(t, c.Load(ctx, "s1", "carData", &v))
	assert.Equal(t, 1, metrics.errors["decode"])
}

func TestJSONCache_UnserializableValue(t *testing.T) {
	metrics := &countingMetrics{}
	c := NewJSONCache(NewMemoryStorage(time.Minute, 0), nopLogger{}, metrics)

	c.Save(context.Background(), "s1", "bad", make(chan int))
	assert.Equal(t, 1, metrics.errors["encode"])
}
