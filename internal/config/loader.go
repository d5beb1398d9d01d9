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
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if IPL_CONFIG is set
//  3. env (prefix IPL_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("IPL_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: IPL_MATCHES_PATH, IPL_TOP_SCORERS, ...
	// Map env keys like IPL_OUTPUT_DIR -> output_dir (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("IPL_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "ipl_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.MatchesPath == "" || cfg.DeliveriesPath == "" {
		return nil, fmt.Errorf("%w: matches_path and deliveries_path must not be empty", ErrInvalidConfig)
	}
	if cfg.OutputDir == "" {
		return nil, fmt.Errorf("%w: output_dir must not be empty", ErrInvalidConfig)
	}
	if cfg.TopTeams <= 0 || cfg.TopScorers <= 0 || cfg.TopWicketTakers <= 0 || cfg.TopAwards <= 0 {
		return nil, fmt.Errorf("%w: top-N limits must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}
