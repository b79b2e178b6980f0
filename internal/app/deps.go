package app

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	"github.com/openai/openai-go/v3"

	"convo-intel/internal/cache"
	"convo-intel/internal/config"
	"convo-intel/internal/events"
	"convo-intel/internal/insight"
	"convo-intel/internal/logger"
	"convo-intel/internal/oracle"
)

// Deps bundles common runtime dependencies for the service.
type Deps struct {
	Config   config.Config
	Log      *slog.Logger
	Oracle   oracle.Client
	Analyzer *insight.Analyzer
	Cache    cache.Cache
	Events   events.Publisher
}

// Build loads env, config, and shared components.
func Build() (Deps, error) {
	// A .env file is a local-dev convenience, not a requirement.
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	oracleClient, err := buildOracle(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize oracle: %w", err)
	}
	c, err := buildCache(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize cache: %w", err)
	}
	pub, err := buildEvents(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize events: %w", err)
	}
	return Deps{
		Config:   cfg,
		Log:      log,
		Oracle:   oracleClient,
		Analyzer: insight.NewAnalyzer(oracleClient, log),
		Cache:    c,
		Events:   pub,
	}, nil
}

// buildOracle selects a provider and wraps it with the concurrency pool.
// A missing API key is expected: the analyzer degrades to defaults
// instead of the service refusing to start.
func buildOracle(cfg config.Config, log *slog.Logger) (oracle.Client, error) {
	var client oracle.Client
	switch cfg.OracleProvider {
	case "gemini":
		if cfg.GeminiKey == "" {
			log.Warn("GEMINI_API_KEY not set; oracle disabled, responses will use fallback insights")
			return oracle.Disabled{}, nil
		}
		gc, err := oracle.NewGeminiClient(cfg.GeminiKey, cfg.OracleModel, cfg.OracleTimeoutDuration())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		log.Info("using Gemini oracle", "model", cfg.OracleModel)
		client = gc
	case "openai":
		if cfg.OpenAIKey == "" {
			log.Warn("OPENAI_API_KEY not set; oracle disabled, responses will use fallback insights")
			return oracle.Disabled{}, nil
		}
		oc, err := oracle.NewOpenAIClient(cfg.OpenAIKey, openai.ChatModel(cfg.OracleModel), cfg.OracleTimeoutDuration())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
		}
		log.Info("using OpenAI oracle", "model", cfg.OracleModel)
		client = oc
	case "none":
		log.Info("oracle disabled by configuration")
		return oracle.Disabled{}, nil
	default:
		return nil, fmt.Errorf("invalid ORACLE_PROVIDER: %s (valid options: gemini, openai, none)", cfg.OracleProvider)
	}
	return oracle.NewPool(client, cfg.OracleMaxInFlight), nil
}

func buildCache(cfg config.Config, log *slog.Logger) (cache.Cache, error) {
	switch cfg.CacheProvider {
	case "redis":
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("REDIS_ADDR is required when CACHE_PROVIDER=redis")
		}
		rc, err := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Warn("redis unavailable, falling back to no-op cache", "err", err)
			return cache.NewNoOpCache(), nil
		}
		log.Info("using Redis cache", "addr", cfg.RedisAddr)
		return rc, nil
	case "none":
		return cache.NewNoOpCache(), nil
	default:
		return nil, fmt.Errorf("invalid CACHE_PROVIDER: %s (valid options: redis, none)", cfg.CacheProvider)
	}
}

func buildEvents(cfg config.Config, log *slog.Logger) (events.Publisher, error) {
	switch cfg.EventsProvider {
	case "nats":
		if cfg.NATSURL == "" {
			return nil, fmt.Errorf("NATS_URL is required when EVENTS_PROVIDER=nats")
		}
		nc, err := nats.Connect(cfg.NATSURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}
		log.Info("using NATS event publisher")
		return events.NewNATS(log, nc), nil
	case "none":
		return events.NewNoOpPublisher(), nil
	default:
		return nil, fmt.Errorf("invalid EVENTS_PROVIDER: %s (valid options: nats, none)", cfg.EventsProvider)
	}
}
