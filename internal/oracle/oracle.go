package oracle

import (
	"context"
	"errors"
)

// Client is the capability the analyzer depends on: one prompt in, one
// plain-text reply out. Adapters normalize whatever shape their provider
// returns down to a single string before it crosses this boundary.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured indicates no provider credential is present. This is an
// expected condition, distinct from a transient provider failure.
var ErrNotConfigured = errors.New("oracle: no provider configured")

// Disabled is the client selected when no credential is available.
// Every call fails with ErrNotConfigured so callers take their fallback path.
type Disabled struct{}

func (Disabled) Generate(ctx context.Context, prompt string) (string, error) {
	return "", ErrNotConfigured
}
