package llm

import (
	"context"
	"fmt"
)

// Client is one LLM backend able to complete a prompt. Implementations
// make exactly one attempt per call; failover across backends is the
// resolver's job, not the client's.
type Client interface {
	// Name is the short label used in answer tags and logs,
	// e.g. "gemini-flash" or "openai".
	Name() string

	// Complete sends the prompt and returns the raw model text.
	Complete(ctx context.Context, prompt string) (string, error)
}

// ProviderError wraps any failure from a single backend: transport,
// auth, quota, or an empty/malformed response.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
