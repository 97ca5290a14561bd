package hardfork

import (
	"context"
	"time"

	"github.com/gabapcia/moneroscan/internal/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/ratelimit"
)

// Placeholder stands in for an activation date that could not be resolved.
const Placeholder = "---"

// dateLayout renders a calendar date; the zone suffix is appended literally
// because timestamps are always converted to UTC.
const dateLayout = "Jan 02 2006"

const instrumentationName = "github.com/gabapcia/moneroscan/internal/hardfork"

// BlockHeaderSource resolves block timestamps, typically through a daemon's
// RPC interface.
type BlockHeaderSource interface {
	// BlockTimestamp returns the UNIX timestamp, in seconds, of the block at
	// height.
	BlockTimestamp(ctx context.Context, height uint64) (int64, error)
}

// FormatDate renders a UNIX timestamp as "Mon DD YYYY UTC".
func FormatDate(timestamp int64) string {
	return time.Unix(timestamp, 0).UTC().Format(dateLayout) + " UTC"
}

// Enricher resolves activation dates for one run. The first failed lookup
// marks the daemon unresponsive; from then on every height gets Placeholder
// without another call. The flag is never reset, so an Enricher must not be
// shared between runs.
type Enricher struct {
	source       BlockHeaderSource
	limiter      ratelimit.Limiter
	unresponsive bool
	failures     metric.Int64Counter
}

// NewEnricher returns an Enricher asking source for timestamps, pacing calls
// through limiter. A nil source disables enrichment: every height resolves
// to Placeholder. A nil limiter means no pacing.
func NewEnricher(source BlockHeaderSource, limiter ratelimit.Limiter) *Enricher {
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}

	failures, _ := otel.Meter(instrumentationName).Int64Counter(
		"moneroscan.hardfork.enrichment_failures",
		metric.WithDescription("Activation date lookups that failed."),
	)

	return &Enricher{
		source:   source,
		limiter:  limiter,
		failures: failures,
	}
}

// Unresponsive reports whether a lookup has failed during this run.
func (e *Enricher) Unresponsive() bool {
	return e.unresponsive
}

// Resolve returns the activation date of the block at height, or
// Placeholder when enrichment is disabled, the daemon already failed once,
// or this lookup fails.
func (e *Enricher) Resolve(ctx context.Context, height uint64) string {
	if e.source == nil || e.unresponsive {
		return Placeholder
	}

	e.limiter.Take()

	timestamp, err := e.source.BlockTimestamp(ctx, height)
	if err != nil {
		e.unresponsive = true
		e.failures.Add(ctx, 1)
		logger.Error(ctx, "daemon lookup failed, skipping remaining activation dates",
			"height", height,
			"error", err,
		)
		return Placeholder
	}

	return FormatDate(timestamp)
}
