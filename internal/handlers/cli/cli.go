// Package cli exposes the moneroscan pipelines as urfave/cli commands.
//
// Record output goes to the writer handed to Run, one line per record or
// group; logs go through the logger package and never share that writer.
package cli

import (
	"context"
	"io"

	"github.com/gabapcia/moneroscan/internal/config"
	"github.com/gabapcia/moneroscan/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
)

// Run builds the moneroscan command tree and executes it with args, which
// include the program name as os.Args does.
//
// cfg carries the environment configuration; flags override it. Commands
// construct their services through b and print to stdout.
//
// Commands:
//
//   - `hardforks`: Prints the hard-fork table of a network.
//   - `seednodes`: Prints the seed nodes grouped by network.
//   - `probe`: Checks that nodes accept TCP connections.
func Run(ctx context.Context, cfg config.Config, b Builder, stdout io.Writer, args []string) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "moneroscan",
		Description:           "Scrapes hard-fork and seed-node metadata from the Monero source tree.",
		Usage:                 "moneroscan [global flags] [command] [flags]",
		Writer:                stdout,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Log at debug level",
				Value: cfg.Debug,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Timeout of each HTTP request",
				Value: cfg.Timeout,
			},
			&cli.StringFlag{
				Name:  "branch",
				Usage: "Branch or tag of the monero repository to read",
				Value: cfg.Branch,
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "Root URL serving raw repository files",
				Value: cfg.BaseURL,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			cfg.Debug = c.Bool("debug")
			cfg.Timeout = c.Duration("timeout")
			cfg.Branch = c.String("branch")
			cfg.BaseURL = c.String("base-url")

			level := "info"
			if cfg.Debug {
				level = "debug"
			}
			if err := logger.Init(logger.WithLevel(level)); err != nil {
				return ctx, err
			}

			return logger.WithFields(ctx, "run_id", uuid.NewString()), nil
		},
		Commands: []*cli.Command{
			hardForksCommand(&cfg, b),
			seedNodesCommand(&cfg, b),
			probeCommand(&cfg, b),
		},
	}

	return app.Run(ctx, args)
}
