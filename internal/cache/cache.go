package cache

import (
	"context"
	"time"

	"convo-intel/internal/insight"
	"convo-intel/internal/risk"
)

// Cache provides analysis result caching
type Cache interface {
	// GetAnalysis retrieves a cached analysis by key
	// Returns nil if not found
	GetAnalysis(ctx context.Context, key string) (*Analysis, error)

	// SetAnalysis stores an analysis with TTL
	SetAnalysis(ctx context.Context, key string, a *Analysis, ttl time.Duration) error

	// Close closes the cache connection
	Close() error
}

// Analysis is the cached outcome of one normalizer+scorer pass.
// The HTTP layer rebuilds the response envelope around it, so the
// request-specific input type is not cached.
type Analysis struct {
	Insight insight.ModelInsight `json:"insight"`
	Report  risk.Report          `json:"report"`
}
