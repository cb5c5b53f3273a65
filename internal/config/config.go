// Package config holds the settings for batch simulations. Values come from
// command-line flags first and are then overridden by DECKBUILDER_*
// environment variables.
package config

import (
	"errors"
	"flag"
	"fmt"
	"runtime"
	"strings"

	"github.com/caarlos0/env/v11"
)

// SimConfig configures a batch of simulated games.
type SimConfig struct {
	Games       int      `env:"DECKBUILDER_GAMES"`
	Seed        int64    `env:"DECKBUILDER_SEED"`
	Workers     int      `env:"DECKBUILDER_WORKERS"`
	MaxTurns    int      `env:"DECKBUILDER_MAX_TURNS"`
	LogLevel    string   `env:"DECKBUILDER_LOG_LEVEL"`
	LogFormat   string   `env:"DECKBUILDER_LOG_FORMAT"`
	KingdomFile string   `env:"DECKBUILDER_KINGDOM_FILE"`
	Kingdom     string   `env:"DECKBUILDER_KINGDOM"` // name or 1-based number in KingdomFile
	Players     []string `env:"DECKBUILDER_PLAYERS" envSeparator:","`
}

// Default returns the settings used when nothing overrides them.
func Default() SimConfig {
	return SimConfig{
		Games:       100,
		Seed:        1,
		Workers:     runtime.NumCPU(),
		MaxTurns:    0,
		LogLevel:    "info",
		LogFormat:   "console",
		KingdomFile: "kingdoms.yaml",
		Kingdom:     "1",
		Players:     []string{"bigmoney", "bigmoney"},
	}
}

// BindFlags registers every setting on fs, using the current values as
// defaults.
func (c *SimConfig) BindFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Games, "games", c.Games, "number of games to simulate")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "master seed; game i uses seed+i")
	fs.IntVar(&c.Workers, "workers", c.Workers, "games run in parallel")
	fs.IntVar(&c.MaxTurns, "max-turns", c.MaxTurns, "turn cap per game (0 = engine default)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "console or json")
	fs.StringVar(&c.KingdomFile, "kingdoms", c.KingdomFile, "path to the kingdoms YAML file")
	fs.StringVar(&c.Kingdom, "kingdom", c.Kingdom, "kingdom name or number")
	fs.Func("players", "comma-separated strategies, one per seat (default "+strings.Join(c.Players, ",")+")", func(s string) error {
		c.Players = splitList(s)
		return nil
	})
}

// Validate checks that the settings describe a runnable batch.
func (c *SimConfig) Validate() error {
	var errs []error
	if c.Games < 1 {
		errs = append(errs, fmt.Errorf("games must be positive, got %d", c.Games))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	if c.MaxTurns < 0 {
		errs = append(errs, fmt.Errorf("max turns must not be negative, got %d", c.MaxTurns))
	}
	if n := len(c.Players); n < 1 || n > 6 {
		errs = append(errs, fmt.Errorf("need 1 to 6 players, got %d", n))
	}
	return errors.Join(errs...)
}

// Load parses args into a fresh SimConfig, applies the environment and
// validates the result.
func Load(fs *flag.FlagSet, args []string) (SimConfig, error) {
	cfg := Default()
	cfg.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables. Fields whose
// variable is unset keep their value.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
