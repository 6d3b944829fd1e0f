package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if TANDEM_CONFIG is set
//  3. env (prefix TANDEM_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("TANDEM_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: TANDEM_ADDR, TANDEM_MATCH_LIMIT, ...
	// Map env keys like TANDEM_MATCH_LIMIT -> match_limit (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("TANDEM_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "tandem_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the engine cannot run with.
func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.WorkerCount < 1:
		return fmt.Errorf("%w: worker_count must be positive", ErrInvalidConfig)
	case c.ReportQueueSize < 1:
		return fmt.Errorf("%w: report_queue_size must be positive", ErrInvalidConfig)
	case c.MatchLimit < 1:
		return fmt.Errorf("%w: match_limit must be positive", ErrInvalidConfig)
	case c.MaxMatchLimit < c.MatchLimit:
		return fmt.Errorf("%w: max_match_limit must be >= match_limit", ErrInvalidConfig)
	case c.SubjectWeight < 0 || c.LevelWeight < 0 || c.AvailabilityWeight < 0 ||
		c.AvailabilityPointsPerHour < 0 || c.BonusWeight < 0:
		return fmt.Errorf("%w: criterion weights must not be negative", ErrInvalidConfig)
	case c.TierExcellent < c.TierGood || c.TierGood < c.TierFair:
		return fmt.Errorf("%w: tier floors must descend excellent >= good >= fair", ErrInvalidConfig)
	}
	return nil
}
