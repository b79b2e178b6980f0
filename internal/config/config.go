package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds minimal runtime configuration. Extend as needed.
type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Upload limits
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE" envDefault:"10485760"` // 10MB in bytes

	// Oracle (external LLM)
	OracleProvider    string `env:"ORACLE_PROVIDER" envDefault:"gemini"` // "gemini", "openai", or "none"
	GeminiKey         string `env:"GEMINI_API_KEY"`
	OpenAIKey         string `env:"OPENAI_API_KEY"`
	OracleModel       string `env:"ORACLE_MODEL" envDefault:"gemini-1.5-flash-latest"`
	OracleTimeout     int    `env:"ORACLE_TIMEOUT_SECONDS" envDefault:"30"`
	OracleMaxInFlight int64  `env:"ORACLE_MAX_CONCURRENT" envDefault:"8"`

	// Cache
	CacheProvider string `env:"CACHE_PROVIDER" envDefault:"none"` // "redis" or "none"
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	CacheTTL      int    `env:"CACHE_TTL_SECONDS" envDefault:"300"`

	// Events
	EventsProvider string `env:"EVENTS_PROVIDER" envDefault:"none"` // "nats" or "none"
	NATSURL        string `env:"NATS_URL"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}

// OracleTimeoutDuration returns the per-call oracle timeout.
func (c Config) OracleTimeoutDuration() time.Duration {
	return time.Duration(c.OracleTimeout) * time.Second
}

// CacheTTLDuration returns the cache entry lifetime.
func (c Config) CacheTTLDuration() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}
