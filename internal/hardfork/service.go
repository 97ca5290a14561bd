// Package hardfork extracts the hard-fork activation table of a Monero
// network from hardforks.cpp and resolves the activation date of every
// entry through a daemon.
package hardfork

import (
	"context"
	"fmt"

	"github.com/gabapcia/moneroscan/internal/network"
	"github.com/gabapcia/moneroscan/internal/pkg/logger"
	"github.com/gabapcia/moneroscan/internal/source"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/ratelimit"
)

// Stage is a step of a hard-fork run.
type Stage string

const (
	StageFetching   Stage = "fetching"
	StageScanning   Stage = "scanning"
	StageExtracting Stage = "extracting"
	StageEnriching  Stage = "enriching"
	StageDone       Stage = "done"
	StageFailed     Stage = "failed"
)

// Request selects what a run reads.
type Request struct {
	Branch  string
	Network network.Network
}

// Service runs the hard-fork pipeline.
type Service interface {
	// Run fetches hardforks.cpp from req.Branch, extracts the table of
	// req.Network and resolves activation dates. Only a failed fetch is
	// fatal; malformed rows are skipped and failed lookups degrade to
	// Placeholder.
	Run(ctx context.Context, req Request) (Records, error)
}

type service struct {
	fetcher source.Fetcher
	daemon  BlockHeaderSource
	limiter ratelimit.Limiter

	extracted metric.Int64Counter
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// run is the state of a single invocation.
type run struct {
	stage    Stage
	enricher *Enricher
}

func (r *run) enter(ctx context.Context, s Stage) {
	if r.stage == s {
		return
	}

	logger.Debug(ctx, "hard fork run stage", "from", r.stage, "to", s)
	r.stage = s
}

// Run implements Service.
func (s *service) Run(ctx context.Context, req Request) (Records, error) {
	if network.P2PPort(req.Network) == 0 {
		return Records{}, fmt.Errorf("%w: '%s'", network.ErrUnknownNetwork, req.Network)
	}

	ctx = logger.WithFields(ctx, "pipeline", "hardforks", "network", req.Network, "branch", req.Branch)
	r := &run{enricher: NewEnricher(s.daemon, s.limiter)}

	r.enter(ctx, StageFetching)
	doc, err := s.fetcher.Fetch(ctx, req.Branch, source.HardForksPath)
	if err != nil {
		r.enter(ctx, StageFailed)
		return Records{}, err
	}
	logger.Info(ctx, "fetched hard fork definitions", "url", doc.URL)

	records := NewRecords()

	r.enter(ctx, StageScanning)
	for line := range Region(req.Network).Lines(doc.Lines()) {
		r.enter(ctx, StageExtracting)

		record, err := ParseLine(line)
		if err != nil {
			logger.Debug(ctx, "skipping line", "line", line, "reason", err)
			continue
		}

		if _, ok := records.Lookup(record.Key()); ok {
			logger.Warn(ctx, "duplicate hard fork version, keeping the first", "version", record.Version)
			continue
		}

		r.enter(ctx, StageEnriching)
		record.ActivationDate = r.enricher.Resolve(ctx, record.Height)
		records.Set(record.Key(), record)
		s.extracted.Add(ctx, 1)
	}

	r.enter(ctx, StageDone)
	if records.Len() == 0 {
		logger.Warn(ctx, "no hard fork entries found")
	}

	return records, nil
}

// Option configures the service.
type Option func(*service)

// WithRateLimit paces daemon lookups to at most rps per second. Zero or
// less disables pacing.
func WithRateLimit(rps int) Option {
	return func(s *service) {
		if rps > 0 {
			s.limiter = ratelimit.New(rps)
		}
	}
}

// New creates the hard-fork service. daemon may be nil to skip activation
// date lookups entirely.
func New(fetcher source.Fetcher, daemon BlockHeaderSource, opts ...Option) *service {
	extracted, _ := otel.Meter(instrumentationName).Int64Counter(
		"moneroscan.hardfork.extracted",
		metric.WithDescription("Hard-fork entries extracted from hardforks.cpp."),
	)

	s := &service{
		fetcher:   fetcher,
		daemon:    daemon,
		extracted: extracted,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
