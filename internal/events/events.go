package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"convo-intel/internal/retry"
)

// Event is emitted after each completed analysis for downstream
// consumers (dashboards, escalation workflows).
type Event struct {
	ID           uuid.UUID `json:"id"`
	Domain       string    `json:"domain"`
	RiskDetected bool      `json:"risk_detected"`
	RiskScore    float64   `json:"risk_score"`
	CallOutcome  string    `json:"call_outcome"`
	CompletedAt  time.Time `json:"completed_at"`
}

// Publisher exposes a minimal contract to emit analysis events.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// PublishWithRetry attempts to publish with retries and exponential backoff.
func PublishWithRetry(ctx context.Context, p Publisher, event Event, attempts int, base time.Duration) error {
	if attempts <= 0 {
		attempts = 1
	}
	for attempt := 0; attempt < attempts; attempt++ {
		if err := p.Publish(ctx, event); err == nil {
			return nil
		} else if attempt == attempts-1 {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retry.ExponentialBackoff(attempt, base)):
		}
	}
	return nil
}
