package llm

import (
	"errors"
	"testing"
	"time"

	"github.com/openai/openai-go/v3"
)

func TestNewChatClientValidation(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		apiKey   string
		model    string
		wantErr  bool
	}{
		{"valid", "gemini-flash", "key", "gemini-2.5-flash", false},
		{"missing name", "", "key", "gemini-2.5-flash", true},
		{"missing api key", "openai", "", "gpt-3.5-turbo", true},
		{"missing model", "openai", "key", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewChatClient(tt.provider, tt.apiKey, "", openai.ChatModel(tt.model), 0.7, time.Second)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewChatClient: %v", err)
			}
			if c.Name() != tt.provider {
				t.Errorf("Name() = %q, want %q", c.Name(), tt.provider)
			}
		})
	}
}

func TestProviderErrorUnwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := &ProviderError{Provider: "gemini-pro", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("ProviderError should unwrap to its cause")
	}
	want := "provider gemini-pro: connection refused"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
