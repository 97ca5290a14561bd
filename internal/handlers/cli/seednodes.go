package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/moneroscan/internal/config"
	"github.com/gabapcia/moneroscan/internal/network"
	"github.com/gabapcia/moneroscan/internal/seednode"

	"github.com/urfave/cli/v3"
)

// seedNodesCommand returns the command printing the seed nodes grouped by
// network, one `network [address:port ...]` line per group. With --probe
// every address is followed by its reachability.
//
// Usage example:
//
//	moneroscan seednodes --network all --probe
func seedNodesCommand(cfg *config.Config, b Builder) *cli.Command {
	defaultNetwork := cfg.Network
	if defaultNetwork == "" {
		defaultNetwork = network.All.String()
	}

	return &cli.Command{
		Name:        "seednodes",
		Description: "Extract the hard-coded seed nodes and group them by network.",
		Usage:       "Prints the seed nodes of one network, or of every network with --network all.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "network",
				Usage: "Network to print (mainnet, stagenet, testnet, all)",
				Value: defaultNetwork,
			},
			&cli.BoolFlag{
				Name:  "probe",
				Usage: "Check that every seed node accepts TCP connections",
			},
			&cli.UintFlag{
				Name:  "probe-attempts",
				Usage: "Connection attempts per node before it is reported unreachable",
				Value: cfg.ProbeAttempts,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			run := *cfg
			run.Network = c.String("network")
			run.ProbeAttempts = c.Uint("probe-attempts")

			n, err := network.Parse(run.Network, true)
			if err != nil {
				return err
			}
			run.Network = n.String()
			if err := run.Validate(); err != nil {
				return err
			}

			groups, err := b.SeedNodes(run).Run(ctx, seednode.Request{Branch: run.Branch, Network: n})
			if err != nil {
				return err
			}

			if !c.Bool("probe") {
				for n, nodes := range groups.All() {
					fmt.Fprintf(c.Root().Writer, "%s %q\n", n, nodes)
				}
				return nil
			}

			results := seednode.Check(ctx, b.Prober(run), groups)
			for n, nodes := range groups.All() {
				annotated := make([]string, 0, len(nodes))
				for _, node := range nodes {
					annotated = append(annotated, node+" "+reachability(results[node].Reachable))
				}
				fmt.Fprintf(c.Root().Writer, "%s %q\n", n, annotated)
			}
			return nil
		},
	}
}

func reachability(ok bool) string {
	if ok {
		return "reachable"
	}
	return "unreachable"
}
