package cache

import (
	"context"
	"time"
)

// NoOpCache is a cache implementation that does nothing.
// Used when no cache backend is configured - all operations succeed
// but no actual caching occurs (always cache miss).
type NoOpCache struct{}

// NewNoOpCache creates a new no-op cache instance
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// GetAnalysis always returns nil (cache miss)
func (c *NoOpCache) GetAnalysis(ctx context.Context, key string) (*Analysis, error) {
	return nil, nil
}

// SetAnalysis does nothing and always succeeds
func (c *NoOpCache) SetAnalysis(ctx context.Context, key string, a *Analysis, ttl time.Duration) error {
	return nil
}

// Close does nothing and always succeeds
func (c *NoOpCache) Close() error {
	return nil
}
