package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v10"
)

// Config holds minimal runtime configuration. Extend as needed.
type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Store
	StoreProvider string `env:"STORE_PROVIDER" envDefault:"sqlite"` // "sqlite" or "postgres"
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"chat_history.db"`
	DBURL         string `env:"DB_URL"`

	// Answer cache
	CacheProvider string `env:"CACHE_PROVIDER" envDefault:"none"` // "redis" or "none"
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	CacheTTL      int    `env:"CACHE_TTL_SECONDS" envDefault:"3600"`

	// Events
	EventsProvider string `env:"EVENTS_PROVIDER" envDefault:"none"` // "nats" or "none"
	NATSURL        string `env:"NATS_URL"`

	// LLM providers, tried in this order on every cache miss.
	ProviderOrder string `env:"PROVIDER_ORDER" envDefault:"gemini-flash,gemini-pro,openai"`
	GoogleKey     string `env:"GOOGLE_API_KEY"`
	OpenAIKey     string `env:"OPENAI_API_KEY"`

	GeminiFlashModel string  `env:"GEMINI_FLASH_MODEL" envDefault:"gemini-2.5-flash"`
	GeminiProModel   string  `env:"GEMINI_PRO_MODEL" envDefault:"gemini-1.5-pro"`
	OpenAIModel      string  `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
	Temperature      float64 `env:"LLM_TEMPERATURE" envDefault:"0.7"`

	// Per-provider call timeout in seconds. 0 leaves each provider
	// call unbounded; a hung backend then stalls the fallback chain
	// until the request itself is cancelled.
	LLMTimeout int `env:"LLM_TIMEOUT_SECONDS" envDefault:"0"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}

// Providers returns the configured provider names in priority order,
// with surrounding whitespace and empty entries removed.
func (c Config) Providers() []string {
	parts := strings.Split(c.ProviderOrder, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			out = append(out, name)
		}
	}
	return out
}
