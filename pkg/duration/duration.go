// Package duration provides canonical time constants for the entire codebase.
//
// Usage:
//
//	ctx, cancel := context.WithTimeout(ctx, duration.ContextShort)
//	client := httpclient.New(httpclient.Config{Timeout: duration.HTTPProbe})
//
// Do not hardcode time.Duration values like `30 * time.Second` elsewhere;
// reference the appropriate constant from this package.
package duration

import "time"

// HTTP client timeouts.
const (
	// HTTPProbe is the total request timeout for a single key-validation
	// probe against the processor API (30s).
	HTTPProbe = 30 * time.Second

	// DialTimeout is the timeout for establishing TCP connections (10s).
	DialTimeout = 10 * time.Second

	// TLSHandshake is the timeout for the TLS handshake (10s).
	TLSHandshake = 10 * time.Second

	// IdleConn is how long idle connections stay pooled (90s).
	IdleConn = 90 * time.Second
)

// Scan pacing.
const (
	// ScanDelay is the default pause between identifier-enumeration
	// requests (500ms). Advisory only: it does not adapt to observed
	// throttling responses.
	ScanDelay = 500 * time.Millisecond
)

// Context timeouts.
const (
	// ContextShort bounds a single probe run (1min).
	ContextShort = 1 * time.Minute

	// ContextScan bounds a full brute-force enumeration (30min).
	ContextScan = 30 * time.Minute
)
