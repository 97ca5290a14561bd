// Package config loads the moneroscan settings from the environment.
//
// Values are read once by Load; command-line flags may then override them
// before Validate is called. The resulting Config is passed explicitly to
// each command.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/moneroscan/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every tunable of a run. Network is empty when unset; each
// command then applies its own default.
type Config struct {
	Branch  string `envconfig:"PROJECT_BRANCH_NAME" default:"master" validate:"required,gitref"`
	Network string `envconfig:"MONERO_NETWORK" validate:"omitempty,oneof=mainnet stagenet testnet all"`

	DaemonHost string        `envconfig:"DAEMON_HOST" default:"node.xmr.to" validate:"required,hostname_rfc1123|ip"`
	NoDaemon   bool          `envconfig:"MONEROSCAN_NO_DAEMON"`
	RateLimit  int           `envconfig:"MONEROSCAN_RATE_LIMIT" default:"0" validate:"gte=0"`
	BaseURL    string        `envconfig:"MONEROSCAN_BASE_URL" default:"https://raw.githubusercontent.com/monero-project/monero" validate:"required,http_url"`
	Timeout    time.Duration `envconfig:"MONEROSCAN_TIMEOUT" default:"10s" validate:"gt=0"`

	ProbeAttempts uint          `envconfig:"MONEROSCAN_PROBE_ATTEMPTS" default:"1" validate:"gte=1"`
	ProbeTimeout  time.Duration `envconfig:"MONEROSCAN_PROBE_TIMEOUT" default:"5s" validate:"gt=0"`

	Debug     bool `envconfig:"MONEROSCAN_DEBUG"`
	Telemetry bool `envconfig:"MONEROSCAN_TELEMETRY"`
}

// Load reads the configuration from the environment, applying defaults for
// unset variables. The result is not validated.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// Validate checks every field against its constraints. The error matches
// validator.ErrValidationFailed.
func (c Config) Validate() error {
	return validator.Validate(c)
}
