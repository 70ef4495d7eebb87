package llm

import (
	"context"
	"fmt"
)

// Client is an abstraction over completion providers
type Client interface {
	// Complete sends a system instruction and a user prompt and returns the raw response text
	Complete(ctx context.Context, system, prompt string) (string, error)
	// Model returns the provider model name used for completions
	Model() string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig("")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	switch config.Provider {
	case ProviderGemini:
		client, err := NewGeminiClient(ctx, config, apiKey)
		if err != nil {
			return nil, err
		}
		return client, nil
	case ProviderAnthropic:
		return NewAnthropicClient(config, apiKey), nil
	case ProviderOpenAI, "":
		return NewOpenAIClient(config, apiKey), nil
	default:
		return nil, fmt.Errorf("unsupported provider %q", config.Provider)
	}
}
