package cli

import (
	"github.com/gabapcia/moneroscan/internal/config"
	"github.com/gabapcia/moneroscan/internal/hardfork"
	"github.com/gabapcia/moneroscan/internal/infra/blockchain/monero"
	"github.com/gabapcia/moneroscan/internal/network"
	transporthttp "github.com/gabapcia/moneroscan/internal/pkg/transport/http"
	"github.com/gabapcia/moneroscan/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/moneroscan/internal/probe"
	"github.com/gabapcia/moneroscan/internal/seednode"
	"github.com/gabapcia/moneroscan/internal/source"
)

// Builder constructs the services a command runs from its validated
// configuration.
type Builder interface {
	HardForks(cfg config.Config, n network.Network) hardfork.Service
	SeedNodes(cfg config.Config) seednode.Service
	Prober(cfg config.Config) probe.Prober
}

type builder struct{}

// Ensure compile-time compliance with the Builder interface.
var _ Builder = builder{}

// NewBuilder returns the Builder wiring the real HTTP, JSON-RPC and TCP
// implementations.
func NewBuilder() builder {
	return builder{}
}

func fetcher(cfg config.Config) source.Fetcher {
	return source.NewFetcher(transporthttp.NewClient(transporthttp.WithTimeout(cfg.Timeout)), cfg.BaseURL)
}

// HardForks implements Builder. With cfg.NoDaemon set activation dates are
// not looked up.
func (builder) HardForks(cfg config.Config, n network.Network) hardfork.Service {
	var daemon hardfork.BlockHeaderSource
	if !cfg.NoDaemon {
		conn := jsonrpc.NewClient(
			transporthttp.NewClient(transporthttp.WithTimeout(cfg.Timeout)),
			monero.Endpoint(cfg.DaemonHost, n),
		)
		daemon = monero.NewClient(conn)
	}

	return hardfork.New(fetcher(cfg), daemon, hardfork.WithRateLimit(cfg.RateLimit))
}

// SeedNodes implements Builder.
func (builder) SeedNodes(cfg config.Config) seednode.Service {
	return seednode.New(fetcher(cfg))
}

// Prober implements Builder.
func (builder) Prober(cfg config.Config) probe.Prober {
	return probe.New(
		probe.WithTimeout(cfg.ProbeTimeout),
		probe.WithAttempts(cfg.ProbeAttempts),
	)
}
