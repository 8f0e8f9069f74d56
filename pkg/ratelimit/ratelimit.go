// Package ratelimit provides request pacing for HTTP probes.
// The identifier-space scanner uses a fixed inter-request delay; an
// optional token-bucket cap bounds the overall request rate. Pacing is
// advisory only: there is no backoff on observed throttling responses.
package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Config holds rate limiting configuration.
type Config struct {
	// Delay is the fixed delay applied before each request (0 = none).
	Delay time.Duration

	// RequestsPerSecond caps the request rate (0 = unlimited).
	RequestsPerSecond float64

	// Burst allows bursting up to N requests before the cap kicks in.
	// Defaults to 1 when RequestsPerSecond is set.
	Burst int
}

// Limiter paces requests with a fixed delay and an optional rate cap.
type Limiter struct {
	delay   time.Duration
	limiter *rate.Limiter
}

// New creates a limiter with the given configuration.
func New(cfg Config) *Limiter {
	l := &Limiter{delay: cfg.Delay}
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		l.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}
	return l
}

// NewWithDelay creates a limiter that applies a fixed delay between
// requests, with no rate cap.
func NewWithDelay(delay time.Duration) *Limiter {
	return New(Config{Delay: delay})
}

// Wait blocks until the pacing policy allows another request.
// Returns the context error if the context is cancelled while waiting.
func (l *Limiter) Wait(ctx context.Context) error {
	if l.limiter != nil {
		if err := l.limiter.Wait(ctx); err != nil {
			return err
		}
	}
	if l.delay > 0 {
		timer := time.NewTimer(l.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return nil
}

// Delay returns the configured fixed delay.
func (l *Limiter) Delay() time.Duration {
	return l.delay
}
