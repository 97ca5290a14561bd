// Package retry provides a configurable retry mechanism for operations that may fail temporarily.
// It wraps the retry-go package from Avast and exposes a simple interface with functional
// options for customizing retry behavior.
//
// The default policy performs a single attempt, so wrapping an operation
// changes nothing until more attempts are configured:
//
//	r := retry.New(
//	    retry.WithAttempts(3),
//	    retry.WithDelay(500*time.Millisecond),
//	)
//	err := r.Execute(ctx, func() error {
//	    return dial()
//	})
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry defines the interface for retry operations.
type Retry interface {
	// Execute runs operation until it succeeds, the attempts are exhausted,
	// or ctx is done. It returns nil on success and the last error otherwise
	// (all errors joined when WithLastErrorOnly(false) is set).
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint                    // total attempts including the first one
	delay       time.Duration           // base delay between retry attempts
	maxDelay    time.Duration           // maximum delay between retry attempts
	lastErrOnly bool                    // whether to return only the last error
	onRetry     func(n uint, err error) // invoked after each failed attempt that will be retried
}

// Option defines a functional option for configuring the retry mechanism.
type Option func(*config)

// retrier implements the Retry interface using the retry-go package.
type retrier struct {
	cfg config
}

// Compile-time assertion that retrier implements Retry interface
var _ Retry = (*retrier)(nil)

// New creates and returns a Retry implementation configured with
// the provided options.
//
// Default configuration:
//   - attempts:    1 (no retries)
//   - delay:       500 milliseconds (base of the exponential backoff)
//   - maxDelay:    5 seconds
//   - lastErrOnly: true
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    1,
		delay:       500 * time.Millisecond,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	// retry-go treats zero attempts as "retry forever".
	if cfg.attempts == 0 {
		cfg.attempts = 1
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements the Retry interface.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	}

	if r.cfg.onRetry != nil {
		options = append(options, retry.OnRetry(r.cfg.onRetry))
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the total number of attempts (including the initial attempt).
// Default: 1. Zero is treated as 1.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between retry attempts.
// Default: 500 milliseconds.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the exponential growth of the delay between attempts.
// Default: 5 seconds.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly sets whether to return only the last error.
// Default: true.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithOnRetry registers a callback run after every failed attempt that is
// followed by another one. n is zero based.
func WithOnRetry(fn func(n uint, err error)) Option {
	return func(c *config) {
		c.onRetry = fn
	}
}
