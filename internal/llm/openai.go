package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// GoogleBaseURL is Gemini's OpenAI-compatible endpoint. Pointing the
// chat client at it lets one adapter serve both vendors.
const GoogleBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

// ChatClient calls an OpenAI-compatible Chat Completions API.
type ChatClient struct {
	name        string
	model       openai.ChatModel
	temperature float64
	timeout     time.Duration
	client      *openai.Client
}

// NewChatClient builds a client for one backend. baseURL may be empty
// for api.openai.com. A zero timeout leaves each call unbounded.
func NewChatClient(name, apiKey, baseURL string, model openai.ChatModel, temperature float64, timeout time.Duration) (*ChatClient, error) {
	if name == "" {
		return nil, fmt.Errorf("provider name required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("api key required for provider %s", name)
	}
	if model == "" {
		return nil, fmt.Errorf("model required for provider %s", name)
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	cli := openai.NewClient(opts...)
	return &ChatClient{
		name:        name,
		model:       model,
		temperature: temperature,
		timeout:     timeout,
		client:      &cli,
	}, nil
}

func (c *ChatClient) Name() string { return c.name }

func (c *ChatClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c == nil || c.client == nil {
		return "", &ProviderError{Provider: "unknown", Err: fmt.Errorf("nil chat client")}
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(prompt),
					},
				},
			},
		},
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		return "", &ProviderError{Provider: c.name, Err: err}
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &ProviderError{Provider: c.name, Err: fmt.Errorf("no choices returned")}
	}
	return resp.Choices[0].Message.Content, nil
}
