// Package llm provides completion-service configuration and client abstractions.
// Gemini, OpenAI and Anthropic are supported behind a single Client interface.
package llm

import (
	"fmt"
	"strings"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider
	ProviderOpenAI Provider = "openai"
	// ProviderAnthropic is the Anthropic/Claude provider
	ProviderAnthropic Provider = "anthropic"
)

const (
	// DefaultTemperature keeps the generated roles varied between runs.
	DefaultTemperature = 0.7
	// DefaultMaxTokens bounds the response to a compact JSON array.
	DefaultMaxTokens = 600
)

// Config holds the model configuration for the application
type Config struct {
	Provider    Provider
	Model       string
	Temperature float32
	MaxTokens   int
}

// defaultModels maps each provider to the model used when none is configured.
var defaultModels = map[Provider]string{
	ProviderGemini:    "gemini-2.5-flash",
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderAnthropic: "claude-3-5-haiku-latest",
}

// DefaultConfig returns the default configuration for a provider.
// An empty provider selects OpenAI.
func DefaultConfig(provider Provider) *Config {
	if provider == "" {
		provider = ProviderOpenAI
	}
	return &Config{
		Provider:    provider,
		Model:       defaultModels[provider],
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
}

// WithModel returns a copy of the config using model, or the config itself when model is empty.
func (c *Config) WithModel(model string) *Config {
	if model == "" {
		return c
	}
	newConfig := *c
	newConfig.Model = model
	return &newConfig
}

// ParseProvider converts a flag or env value into a Provider.
func ParseProvider(s string) (Provider, error) {
	switch p := Provider(strings.ToLower(strings.TrimSpace(s))); p {
	case ProviderGemini, ProviderOpenAI, ProviderAnthropic:
		return p, nil
	case "":
		return ProviderOpenAI, nil
	default:
		return "", fmt.Errorf("unsupported provider %q", s)
	}
}

// APIKeyEnv returns the environment variables consulted for a provider's API key, in order.
func APIKeyEnv(provider Provider) []string {
	switch provider {
	case ProviderGemini:
		return []string{"GEMINI_API_KEY"}
	case ProviderAnthropic:
		return []string{"ANTHROPIC_API_KEY"}
	default:
		return []string{"OPENAI_API_KEY", "VITE_OPENAI_API_KEY"}
	}
}
