package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	"github.com/openai/openai-go/v3"

	"chat-relay/internal/cache"
	"chat-relay/internal/config"
	"chat-relay/internal/events"
	"chat-relay/internal/llm"
	"chat-relay/internal/logger"
	"chat-relay/internal/resolver"
	"chat-relay/internal/store"
)

// Deps bundles common runtime dependencies for the server.
type Deps struct {
	Config   config.Config
	Log      *slog.Logger
	Store    store.Store
	Cache    cache.Cache
	Events   events.Publisher
	Resolver *resolver.Resolver
}

// Build loads env, config, and shared components.
func Build() (Deps, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	st, err := buildStore(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize store: %w", err)
	}
	c, err := buildCache(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize cache: %w", err)
	}
	pub, err := buildEvents(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize events: %w", err)
	}
	providers, err := buildProviders(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize providers: %w", err)
	}

	res := resolver.New(log, st, c, pub, providers, time.Duration(cfg.CacheTTL)*time.Second)
	return Deps{
		Config:   cfg,
		Log:      log,
		Store:    st,
		Cache:    c,
		Events:   pub,
		Resolver: res,
	}, nil
}

func buildStore(cfg config.Config, log *slog.Logger) (store.Store, error) {
	switch cfg.StoreProvider {
	case "sqlite":
		s, err := store.NewSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite: %w", err)
		}
		log.Info("using SQLite store", "path", cfg.SQLitePath)
		return s, nil
	case "postgres":
		if cfg.DBURL == "" {
			return nil, fmt.Errorf("DB_URL is required when STORE_PROVIDER=postgres")
		}
		s, err := store.NewPostgres(cfg.DBURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Postgres: %w", err)
		}
		log.Info("using Postgres store")
		return s, nil
	default:
		return nil, fmt.Errorf("invalid STORE_PROVIDER: %s (valid options: sqlite, postgres)", cfg.StoreProvider)
	}
}

func buildCache(cfg config.Config, log *slog.Logger) (cache.Cache, error) {
	switch cfg.CacheProvider {
	case "redis":
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("REDIS_ADDR is required when CACHE_PROVIDER=redis")
		}
		c, err := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}
		log.Info("using Redis answer cache", "addr", cfg.RedisAddr)
		return c, nil
	case "none":
		log.Info("answer cache disabled; all lookups go to the store")
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
		log.Info("publishing chat events to NATS")
		return events.NewNATS(nc), nil
	case "none":
		return events.NewNoOpPublisher(), nil
	default:
		return nil, fmt.Errorf("invalid EVENTS_PROVIDER: %s (valid options: nats, none)", cfg.EventsProvider)
	}
}

func buildProviders(cfg config.Config, log *slog.Logger) ([]llm.Client, error) {
	timeout := time.Duration(cfg.LLMTimeout) * time.Second
	names := cfg.Providers()
	if len(names) == 0 {
		return nil, fmt.Errorf("PROVIDER_ORDER is empty")
	}
	providers := make([]llm.Client, 0, len(names))
	for _, name := range names {
		var (
			client llm.Client
			err    error
		)
		switch name {
		case "gemini-flash":
			client, err = llm.NewChatClient(name, cfg.GoogleKey, llm.GoogleBaseURL, openai.ChatModel(cfg.GeminiFlashModel), cfg.Temperature, timeout)
		case "gemini-pro":
			client, err = llm.NewChatClient(name, cfg.GoogleKey, llm.GoogleBaseURL, openai.ChatModel(cfg.GeminiProModel), cfg.Temperature, timeout)
		case "openai":
			client, err = llm.NewChatClient(name, cfg.OpenAIKey, "", openai.ChatModel(cfg.OpenAIModel), cfg.Temperature, timeout)
		default:
			return nil, fmt.Errorf("unknown provider %q in PROVIDER_ORDER", name)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to initialize provider %s: %w", name, err)
		}
		providers = append(providers, client)
	}
	log.Info("provider fallback order configured", "order", names)
	return providers, nil
}
