package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/moneroscan/internal/config"
	"github.com/gabapcia/moneroscan/internal/probe"

	"github.com/urfave/cli/v3"
)

// ErrUnreachable is returned by the probe command when at least one target
// refused every connection attempt.
var ErrUnreachable = errors.New("node unreachable")

// errNoTargets is returned when the probe command gets no arguments.
var errNoTargets = errors.New("probe: at least one host:port target is required")

// probeCommand returns the command checking that each host:port argument
// accepts TCP connections, printing one `host:port reachable|unreachable`
// line per target.
//
// Usage example:
//
//	moneroscan probe 198.74.231.92:18080 66.85.74.134:18080
func probeCommand(cfg *config.Config, b Builder) *cli.Command {
	return &cli.Command{
		Name:        "probe",
		Description: "Check that nodes accept TCP connections.",
		Usage:       "Attempts a bounded TCP connection to every host:port argument.",
		ArgsUsage:   "host:port [host:port ...]",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  "attempts",
				Usage: "Connection attempts per target",
				Value: cfg.ProbeAttempts,
			},
			&cli.DurationFlag{
				Name:  "probe-timeout",
				Usage: "Timeout of each connection attempt",
				Value: cfg.ProbeTimeout,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			run := *cfg
			run.ProbeAttempts = c.Uint("attempts")
			run.ProbeTimeout = c.Duration("probe-timeout")

			if c.Args().Len() == 0 {
				return errNoTargets
			}
			if err := run.Validate(); err != nil {
				return err
			}

			targets := make([]probe.Target, 0, c.Args().Len())
			for _, arg := range c.Args().Slice() {
				target, err := probe.ParseTarget(arg)
				if err != nil {
					return err
				}
				targets = append(targets, target)
			}

			prober := b.Prober(run)

			var unreachable int
			for _, target := range targets {
				result := prober.Probe(ctx, target)
				if !result.Reachable {
					unreachable++
				}
				fmt.Fprintf(c.Root().Writer, "%s %s\n", target, reachability(result.Reachable))
			}

			if unreachable > 0 {
				return fmt.Errorf("%w: %d of %d targets", ErrUnreachable, unreachable, len(targets))
			}
			return nil
		},
	}
}
