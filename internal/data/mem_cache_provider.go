package data

import (
	"context"
	"founderdeck/internal/config"
	"founderdeck/internal/metrics"
	"log/slog"
	"sync"
	"time"
)

type cacheEntry struct {
	value     []byte
	expiresAt time.Time
}

type MemCache struct {
	cache  map[string]cacheEntry
	mutex  sync.RWMutex
	logger *slog.Logger
}

func NewMemCache(_ *config.Config, logger *slog.Logger) *MemCache {
	return &MemCache{
		cache:  make(map[string]cacheEntry),
		logger: logger,
	}
}

// Get returns the cached value for a key. Expired entries are treated as
// misses and dropped lazily.
func (m *MemCache) Get(_ context.Context, key string) ([]byte, bool) {
	m.mutex.RLock()
	entry, exists := m.cache[key]
	m.mutex.RUnlock()

	if !exists {
		metrics.CacheMisses.WithLabelValues(metrics.CacheTypeMemory).Inc()
		return nil, false
	}

	if time.Now().After(entry.expiresAt) {
		m.mutex.Lock()
		delete(m.cache, key)
		m.mutex.Unlock()

		metrics.CacheMisses.WithLabelValues(metrics.CacheTypeMemory).Inc()
		return nil, false
	}

	metrics.CacheHits.WithLabelValues(metrics.CacheTypeMemory).Inc()
	return entry.value, true
}

// Set sets (or inserts) the value of a key
func (m *MemCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	start := time.Now()

	m.mutex.Lock()
	m.cache[key] = cacheEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	m.mutex.Unlock()

	metrics.CacheOperationDuration.WithLabelValues(metrics.CacheTypeMemory, metrics.CacheOperationTypeSet).Observe(time.Since(start).Seconds())
}

// Delete removes an entry from the cache
func (m *MemCache) Delete(_ context.Context, key string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.cache, key)
}

// Size returns the current number of elements in the cache
func (m *MemCache) Size(_ context.Context) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.cache)
}

func (m *MemCache) Close() error {
	return nil
}
