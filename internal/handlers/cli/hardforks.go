package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/moneroscan/internal/config"
	"github.com/gabapcia/moneroscan/internal/hardfork"
	"github.com/gabapcia/moneroscan/internal/network"

	"github.com/urfave/cli/v3"
)

// hardForksCommand returns the command printing the hard-fork table of one
// network, one `Version N [date height difficulty]` line per entry.
//
// Usage example:
//
//	moneroscan --branch release-v0.18 hardforks --network stagenet
func hardForksCommand(cfg *config.Config, b Builder) *cli.Command {
	defaultNetwork := cfg.Network
	if defaultNetwork == "" || defaultNetwork == network.All.String() {
		defaultNetwork = network.Mainnet.String()
	}

	return &cli.Command{
		Name:        "hardforks",
		Description: "Extract the hard-fork table of a network and resolve activation dates through a daemon.",
		Usage:       "Prints version, activation date, height and difficulty of every hard fork.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "network",
				Usage: "Network whose table is read (mainnet, stagenet, testnet)",
				Value: defaultNetwork,
			},
			&cli.StringFlag{
				Name:  "daemon",
				Usage: "Host of the monerod instance used to resolve activation dates",
				Value: cfg.DaemonHost,
			},
			&cli.BoolFlag{
				Name:  "no-daemon",
				Usage: "Skip activation date lookups",
				Value: cfg.NoDaemon,
			},
			&cli.IntFlag{
				Name:  "rate-limit",
				Usage: "Maximum daemon lookups per second, 0 for no limit",
				Value: cfg.RateLimit,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			run := *cfg
			run.Network = c.String("network")
			run.DaemonHost = c.String("daemon")
			run.NoDaemon = c.Bool("no-daemon")
			run.RateLimit = c.Int("rate-limit")

			n, err := network.Parse(run.Network, false)
			if err != nil {
				return err
			}
			run.Network = n.String()
			if err := run.Validate(); err != nil {
				return err
			}

			records, err := b.HardForks(run, n).Run(ctx, hardfork.Request{Branch: run.Branch, Network: n})
			if err != nil {
				return err
			}

			for key, record := range records.All() {
				fmt.Fprintf(c.Root().Writer, "%s %q\n", key, record.Fields())
			}
			return nil
		},
	}
}
