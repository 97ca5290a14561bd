package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/moneroscan/internal/config"
	"github.com/gabapcia/moneroscan/internal/handlers/cli"
	"github.com/gabapcia/moneroscan/internal/pkg/logger"
	"github.com/gabapcia/moneroscan/internal/pkg/telemetry"
)

const (
	serviceName    = "moneroscan"
	serviceVersion = "0.1.0"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		return fail(ctx, "invalid configuration", err)
	}

	var shutdown telemetry.ShutdownFunc = telemetry.Noop
	if cfg.Telemetry {
		if shutdown, err = telemetry.Init(ctx, serviceName, serviceVersion); err != nil {
			return fail(ctx, "telemetry setup failed", err)
		}
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := shutdown(shutdownCtx); err != nil {
			logger.Warn(shutdownCtx, "telemetry shutdown failed", "error", err)
		}
	}()

	if err := cli.Run(ctx, cfg, cli.NewBuilder(), os.Stdout, os.Args); err != nil {
		return fail(ctx, "moneroscan failed", err)
	}

	return 0
}

// fail logs err and returns the process exit status. The logger may not be
// initialized yet when configuration fails, so it is set up with defaults.
func fail(ctx context.Context, msg string, err error) int {
	_ = logger.Init()
	logger.Error(ctx, msg, "error", err)
	return 1
}
