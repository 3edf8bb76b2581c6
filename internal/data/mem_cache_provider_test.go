package data

import (
	"context"
	"founderdeck/internal/config"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemCache() *MemCache {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewMemCache(&config.Config{}, logger)
}

func TestMemCacheSetAndGet(t *testing.T) {
	cache := newTestMemCache()
	ctx := context.Background()

	cache.Set(ctx, "dashboard:owner-1", []byte(`{"demo":false}`), time.Minute)

	value, found := cache.Get(ctx, "dashboard:owner-1")
	require.True(t, found)
	assert.Equal(t, []byte(`{"demo":false}`), value)
}

func TestMemCacheMiss(t *testing.T) {
	cache := newTestMemCache()

	value, found := cache.Get(context.Background(), "missing")
	assert.False(t, found)
	assert.Nil(t, value)
}

func TestMemCacheExpiry(t *testing.T) {
	cache := newTestMemCache()
	ctx := context.Background()

	cache.Set(ctx, "short-lived", []byte("value"), time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	_, found := cache.Get(ctx, "short-lived")
	assert.False(t, found)

	// expired entries are dropped on read
	assert.Equal(t, 0, cache.Size(ctx))
}

func TestMemCacheOverwrite(t *testing.T) {
	cache := newTestMemCache()
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("first"), time.Minute)
	cache.Set(ctx, "key", []byte("second"), time.Minute)

	value, found := cache.Get(ctx, "key")
	require.True(t, found)
	assert.Equal(t, []byte("second"), value)
	assert.Equal(t, 1, cache.Size(ctx))
}

func TestMemCacheDelete(t *testing.T) {
	cache := newTestMemCache()
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("value"), time.Minute)
	cache.Delete(ctx, "key")

	_, found := cache.Get(ctx, "key")
	assert.False(t, found)

	// deleting again is a no-op
	cache.Delete(ctx, "key")
	assert.Equal(t, 0, cache.Size(ctx))
}

func TestMemCacheClose(t *testing.T) {
	assert.NoError(t, newTestMemCache().Close())
}

func TestNewCacheProviderDefaultsToMemory(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	cfg := &config.Config{Cache: config.CacheConfig{Type: "memory"}}

	provider, err := NewCacheProvider(cfg, logger)
	require.NoError(t, err)
	assert.IsType(t, &MemCache{}, provider)
}
