package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      string        `env:"PORT" envDefault:"8080"`
	BaseURL   string        `env:"BASE_URL" envDefault:"/"`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"10s"`
	SiteFile  string        `env:"SITE_CONFIG"`
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"60m"`
	RateLimit int           `env:"RATE_LIMIT" envDefault:"500"`
}

// Load reads the process configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.BaseURL = NormalizeBaseURL(cfg.BaseURL)

	if cfg.Timeout <= 0 {
		return cfg, fmt.Errorf("TIMEOUT must be positive, got %s", cfg.Timeout)
	}
	if cfg.RateLimit <= 0 {
		return cfg, fmt.Errorf("RATE_LIMIT must be positive, got %d", cfg.RateLimit)
	}

	return cfg, nil
}

// NormalizeBaseURL returns base with exactly one leading slash and no
// trailing slash, or "/" for the root.
func NormalizeBaseURL(base string) string {
	base = strings.Trim(strings.TrimSpace(base), "/")
	if base == "" {
		return "/"
	}
	return "/" + base
}
