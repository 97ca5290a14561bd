// Package probe checks whether a node accepts TCP connections.
package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/gabapcia/moneroscan/internal/pkg/logger"
	"github.com/gabapcia/moneroscan/internal/pkg/resilience/retry"
)

// ErrInvalidTarget is returned by ParseTarget for malformed input.
var ErrInvalidTarget = errors.New("invalid probe target")

// Target is a host and TCP port.
type Target struct {
	Host string
	Port int
}

// String returns the "host:port" form of t, bracketing IPv6 hosts.
func (t Target) String() string {
	return net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
}

// ParseTarget parses "host:port".
func ParseTarget(s string) (Target, error) {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return Target{}, fmt.Errorf("%w: %v", ErrInvalidTarget, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return Target{}, fmt.Errorf("%w: port '%s'", ErrInvalidTarget, portStr)
	}

	if host == "" {
		return Target{}, fmt.Errorf("%w: empty host in '%s'", ErrInvalidTarget, s)
	}

	return Target{Host: host, Port: port}, nil
}

// Result is the outcome of one probe. Err holds the last dial error of an
// unreachable target; callers that only care about reachability ignore it.
type Result struct {
	Target    Target
	Reachable bool
	Err       error
}

// Dialer opens network connections.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Prober checks reachability of targets.
type Prober interface {
	// Probe attempts a TCP connection to target and closes it right away.
	Probe(ctx context.Context, target Target) Result
}

type prober struct {
	dialer  Dialer
	timeout time.Duration
	retry   retry.Retry
}

// Compile-time assertion that prober implements the Prober interface.
var _ Prober = (*prober)(nil)

// Probe implements Prober.
func (p *prober) Probe(ctx context.Context, target Target) Result {
	address := target.String()

	err := p.retry.Execute(ctx, func() error {
		dialCtx, cancel := context.WithTimeout(ctx, p.timeout)
		defer cancel()

		conn, err := p.dialer.DialContext(dialCtx, "tcp", address)
		if err != nil {
			return err
		}
		return conn.Close()
	})
	if err != nil {
		logger.Debug(ctx, "node unreachable", "address", address, "error", err)
		return Result{Target: target, Err: err}
	}

	return Result{Target: target, Reachable: true}
}

// config holds the prober settings.
type config struct {
	dialer   Dialer
	timeout  time.Duration
	attempts uint
	delay    time.Duration
}

// Option configures a Prober.
type Option func(*config)

// WithTimeout bounds each connection attempt. Default: 5 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithAttempts sets how many connection attempts a probe makes before the
// target is reported unreachable. Default: 1.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithRetryDelay sets the base backoff between attempts. Default: 500ms.
func WithRetryDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithDialer replaces the network dialer, mostly for tests.
func WithDialer(d Dialer) Option {
	return func(c *config) {
		c.dialer = d
	}
}

// New returns a Prober.
func New(opts ...Option) *prober {
	cfg := config{
		dialer:   &net.Dialer{},
		timeout:  5 * time.Second,
		attempts: 1,
		delay:    500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &prober{
		dialer:  cfg.dialer,
		timeout: cfg.timeout,
		retry:   retry.New(retry.WithAttempts(cfg.attempts), retry.WithDelay(cfg.delay)),
	}
}
