// Package cache provides quote caches: an in-memory default and a Redis
// implementation for deployments that share quotes across instances.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

type memoryEntry struct {
	price     decimal.Decimal
	expiresAt time.Time
}

// MemoryQuoteCache is a process-local quote cache.
type MemoryQuoteCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryQuoteCache creates an empty MemoryQuoteCache.
func NewMemoryQuoteCache() *MemoryQuoteCache {
	return &MemoryQuoteCache{entries: make(map[string]memoryEntry)}
}

// Get implements provider.QuoteCache.
func (c *MemoryQuoteCache) Get(_ context.Context, symbol string) (decimal.Decimal, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[symbol]
	c.mu.RUnlock()
	if !ok || time.Now().After(e.expiresAt) {
		return decimal.Zero, false, nil
	}
	return e.price, true, nil
}

// Set implements provider.QuoteCache.
func (c *MemoryQuoteCache) Set(_ context.Context, symbol string, price decimal.Decimal, ttl time.Duration) error {
	c.mu.Lock()
	c.entries[symbol] = memoryEntry{price: price, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
	return nil
}
