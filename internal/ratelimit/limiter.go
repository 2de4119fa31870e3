// internal/ratelimit/limiter.go
package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer defines the interface for pacing outbound requests.
//
// Implementations bound the rate of page fetches so a batch run does
// not hammer the target host. The policy is injected into the batch
// runner, which keeps tests deterministic without real-time waits.
type Pacer interface {
	// Wait blocks until the next request may proceed.
	// If the context is cancelled before the pacer allows, an error is returned.
	Wait(ctx context.Context) error
}

// DelayPacer spaces requests using a token bucket sized for one request
// per configured delay.
type DelayPacer struct {
	limiter *rate.Limiter
}

// NewDelayPacer creates a pacer that allows one request per delay.
// A zero or negative delay disables pacing.
func NewDelayPacer(delay time.Duration) *DelayPacer {
	if delay <= 0 {
		return &DelayPacer{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &DelayPacer{limiter: rate.NewLimiter(rate.Every(delay), 1)}
}

// Wait blocks until the next request can proceed according to the configured delay
func (p *DelayPacer) Wait(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return p.limiter.Wait(ctx)
}

// NopPacer never blocks. Used in tests and for check runs against a
// single address.
type NopPacer struct{}

// Wait returns immediately
func (NopPacer) Wait(ctx context.Context) error {
	return nil
}
