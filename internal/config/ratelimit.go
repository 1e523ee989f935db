package config

import "time"

// RateLimitConfig defines the fixed-window request limiter applied to the
// /v1 route group.
type RateLimitConfig struct {
	Enabled bool
	Limit   int           // max requests per window per ip+route
	Window  time.Duration // window length
	Prefix  string        // redis key prefix
}

// LoadRateLimitConfig builds a RateLimitConfig from environment variables.
// Degenerate values are clamped so the limiter never divides by zero.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled: getenv("RATE_LIMIT_ENABLED", "true") == "true",
		Limit:   atoi(getenv("RATE_LIMIT_MAX", "60")),
		Window:  parseDur(getenv("RATE_LIMIT_WINDOW", "1m")),
		Prefix:  getenv("RATE_LIMIT_PREFIX", "rl"),
	}
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	if cfg.Window < time.Second {
		cfg.Window = time.Second
	}
	return cfg
}
