package oracle

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Pool bounds how many oracle calls run at once across requests, so a
// slow provider cannot stall every in-flight request. Acquire honors the
// caller's context, including the per-call timeout set upstream.
type Pool struct {
	inner Client
	sem   *semaphore.Weighted
}

// NewPool wraps a client with a concurrency limit. Limits below 1 are
// coerced to 1.
func NewPool(inner Client, limit int64) *Pool {
	if limit < 1 {
		limit = 1
	}
	return &Pool{
		inner: inner,
		sem:   semaphore.NewWeighted(limit),
	}
}

func (p *Pool) Generate(ctx context.Context, prompt string) (string, error) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer p.sem.Release(1)
	return p.inner.Generate(ctx, prompt)
}
