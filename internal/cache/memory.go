package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryCache is the fallback when no Redis URL is configured; entries live
// for the lifetime of the process.
type MemoryCache struct {
	mu   sync.Mutex
	data map[string]struct{}
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string]struct{})}
}

func (m *MemoryCache) Close() error {
	return nil
}

func (m *MemoryCache) IsProcessed(ctx context.Context, hash string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, exists := m.data[hash]
	return exists, nil
}

func (m *MemoryCache) MarkProcessed(ctx context.Context, hash string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[hash] = struct{}{}
	return nil
}

func (m *MemoryCache) ClearProcessed(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]struct{})
	return nil
}
