package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Save original env and restore after test
	originalEnv := os.Environ()
	defer func() {
		os.Clearenv()
		for _, env := range originalEnv {
			for i, c := range env {
				if c == '=' {
					os.Setenv(env[:i], env[i+1:])
					break
				}
			}
		}
	}()

	// Clear env to test defaults
	os.Clearenv()

	cfg := Load()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Port", cfg.Port, 8080},
		{"LogLevel", cfg.LogLevel, "info"},
		{"StoreProvider", cfg.StoreProvider, "sqlite"},
		{"SQLitePath", cfg.SQLitePath, "chat_history.db"},
		{"CacheProvider", cfg.CacheProvider, "none"},
		{"EventsProvider", cfg.EventsProvider, "none"},
		{"ProviderOrder", cfg.ProviderOrder, "gemini-flash,gemini-pro,openai"},
		{"GeminiFlashModel", cfg.GeminiFlashModel, "gemini-2.5-flash"},
		{"GeminiProModel", cfg.GeminiProModel, "gemini-1.5-pro"},
		{"OpenAIModel", cfg.OpenAIModel, "gpt-3.5-turbo"},
		{"Temperature", cfg.Temperature, 0.7},
		{"LLMTimeout", cfg.LLMTimeout, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("expected %s=%v, got %v", tt.name, tt.expected, tt.got)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	originalPort := os.Getenv("PORT")
	originalOrder := os.Getenv("PROVIDER_ORDER")
	defer func() {
		os.Setenv("PORT", originalPort)
		os.Setenv("PROVIDER_ORDER", originalOrder)
	}()

	os.Setenv("PORT", "9090")
	os.Setenv("PROVIDER_ORDER", "openai,gemini-flash")

	cfg := Load()

	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.ProviderOrder != "openai,gemini-flash" {
		t.Errorf("expected overridden provider order, got %s", cfg.ProviderOrder)
	}
}

func TestProviders(t *testing.T) {
	tests := []struct {
		name  string
		order string
		want  []string
	}{
		{"default order", "gemini-flash,gemini-pro,openai", []string{"gemini-flash", "gemini-pro", "openai"}},
		{"whitespace trimmed", " openai , gemini-flash ", []string{"openai", "gemini-flash"}},
		{"empty entries dropped", "openai,,gemini-flash,", []string{"openai", "gemini-flash"}},
		{"empty string", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{ProviderOrder: tt.order}
			got := cfg.Providers()
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}
