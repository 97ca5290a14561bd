// Package seednode extracts the hard-coded seed nodes from net_node.inl,
// groups them by network and optionally checks that each one accepts
// connections.
package seednode

import (
	"context"
	"fmt"

	"github.com/gabapcia/moneroscan/internal/network"
	"github.com/gabapcia/moneroscan/internal/pkg/logger"
	"github.com/gabapcia/moneroscan/internal/probe"
	"github.com/gabapcia/moneroscan/internal/source"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/gabapcia/moneroscan/internal/seednode"

// Stage is a step of a seed-node run.
type Stage string

const (
	StageFetching   Stage = "fetching"
	StageScanning   Stage = "scanning"
	StageExtracting Stage = "extracting"
	StageDone       Stage = "done"
	StageFailed     Stage = "failed"
)

// Request selects what a run reads. Network may be network.All.
type Request struct {
	Branch  string
	Network network.Network
}

// Service runs the seed-node pipeline.
type Service interface {
	// Run fetches net_node.inl from req.Branch and groups every seed node
	// by network. With network.All every group found is returned, in order
	// of first appearance; otherwise only the selected group, which may be
	// empty.
	Run(ctx context.Context, req Request) (Groups, error)
}

type service struct {
	fetcher   source.Fetcher
	extracted metric.Int64Counter
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// Run implements Service.
func (s *service) Run(ctx context.Context, req Request) (Groups, error) {
	if req.Network != network.All && network.P2PPort(req.Network) == 0 {
		return Groups{}, fmt.Errorf("%w: '%s'", network.ErrUnknownNetwork, req.Network)
	}

	ctx = logger.WithFields(ctx, "pipeline", "seednodes", "network", req.Network, "branch", req.Branch)
	stage := StageFetching
	enter := func(next Stage) {
		if stage != next {
			logger.Debug(ctx, "seed node run stage", "from", stage, "to", next)
			stage = next
		}
	}

	doc, err := s.fetcher.Fetch(ctx, req.Branch, source.SeedNodesPath)
	if err != nil {
		enter(StageFailed)
		return Groups{}, err
	}
	logger.Info(ctx, "fetched seed node definitions", "url", doc.URL)

	found := NewGroups()

	enter(StageScanning)
	for line := range Region.Lines(doc.Lines()) {
		enter(StageExtracting)

		record, err := ParseLine(line)
		if err != nil {
			logger.Debug(ctx, "skipping line", "line", line, "reason", err)
			continue
		}

		if record.Network == network.Undefined {
			logger.Warn(ctx, "seed node port matches no network", "address", record.HostPort())
		}

		found.Add(record)
		s.extracted.Add(ctx, 1, metric.WithAttributes(attribute.String("network", record.Network.String())))
	}
	enter(StageDone)

	if req.Network == network.All {
		return found, nil
	}

	selected := NewGroups()
	selected.Set(req.Network, found.Get(req.Network))
	if len(selected.Get(req.Network)) == 0 {
		logger.Warn(ctx, "no seed nodes found for network")
	}

	return selected, nil
}

// Check probes every node of groups in order and returns the results keyed
// by "address:port". Nodes whose entry cannot be parsed as a target are
// reported unreachable.
func Check(ctx context.Context, prober probe.Prober, groups Groups) map[string]probe.Result {
	results := make(map[string]probe.Result)

	for n, nodes := range groups.All() {
		for _, node := range nodes {
			if _, ok := results[node]; ok {
				continue
			}

			target, err := probe.ParseTarget(node)
			if err != nil {
				results[node] = probe.Result{Err: err}
				continue
			}

			result := prober.Probe(ctx, target)
			logger.Info(ctx, "probed seed node", "network", n, "address", node, "reachable", result.Reachable)
			results[node] = result
		}
	}

	return results
}

// New creates the seed-node service.
func New(fetcher source.Fetcher) *service {
	extracted, _ := otel.Meter(instrumentationName).Int64Counter(
		"moneroscan.seednode.extracted",
		metric.WithDescription("Seed node entries extracted from net_node.inl."),
	)

	return &service{
		fetcher:   fetcher,
		extracted: extracted,
	}
}
