// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load(ctx) layers defaults, an optional YAML file, and environment vars.
// - External errors must be wrapped via this package's error helpers.
package config

// Default cooldown between submissions from the same wallet, in ms.
const defaultCooldownMS = 8000

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// DatabaseURL is the Postgres DSN for the score store. Empty selects the
	// in-memory store (useful for local development and tests).
	DatabaseURL string `koanf:"database_url"`

	// CooldownMS is the minimum interval between submissions from the same
	// wallet, across both games.
	CooldownMS int `koanf:"cooldown_ms"`

	// Frozen is the default freeze state. The ARCADE_FROZEN environment
	// variable overrides it per request so a freeze takes effect without a
	// restart.
	Frozen bool `koanf:"frozen"`

	// MaxLeaderboardLimit caps GET /leaderboard?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// DefaultLeaderboardLimit applies when no limit is given.
	DefaultLeaderboardLimit int `koanf:"default_leaderboard_limit"`

	// AllowedOrigins is the CORS allowlist. Requests from any other origin
	// receive DefaultOrigin in the Access-Control-Allow-Origin header.
	AllowedOrigins []string `koanf:"allowed_origins"`

	// DefaultOrigin is the fail-safe CORS origin for unlisted origins.
	DefaultOrigin string `koanf:"default_origin"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:                "info",
		Addr:                    ":9080",
		DatabaseURL:             "",
		CooldownMS:              defaultCooldownMS,
		Frozen:                  false,
		MaxLeaderboardLimit:     100,
		DefaultLeaderboardLimit: 20,
		AllowedOrigins: []string{
			"http://localhost:5173",
			"http://127.0.0.1:5173",
			"https://spectral-layer.github.io",
		},
		DefaultOrigin: "https://spectral-layer.github.io",
	}
}
