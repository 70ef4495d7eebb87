// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/alternate-futures/internal/futures"
	"github.com/jonathan/alternate-futures/internal/llm"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Input
	Inputs []string `json:"inputs,omitempty"` // Resume files, concatenated in order

	// Completion service
	Provider string `json:"provider,omitempty"` // gemini, openai or anthropic
	Model    string `json:"model,omitempty"`    // Overrides the provider's default model
	APIKey   string `json:"api_key,omitempty"`  // Overrides the provider's API key env var

	// Projection. Pointers so an explicit 0 survives merging.
	FutureCount *int   `json:"future_count,omitempty"` // Number of future roles to request
	SpanYears   *int   `json:"span_years,omitempty"`   // Projection window in years
	Anchor      string `json:"anchor,omitempty"`       // global or resume

	// Server
	Port int `json:"port,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print boxed output instead of JSON
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are checked by CLI flag validation after merging.
func (c *Config) Validate() error {
	if _, err := llm.ParseProvider(c.Provider); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if _, err := futures.ParseAnchor(c.Anchor); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.FutureCount != nil && *c.FutureCount < 0 {
		return fmt.Errorf("config error: 'future_count' must be non-negative")
	}
	if c.SpanYears != nil && *c.SpanYears < 0 {
		return fmt.Errorf("config error: 'span_years' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	for _, in := range c.Inputs {
		if _, err := os.Stat(in); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", in)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if len(result.Inputs) == 0 {
		result.Inputs = defaults.Inputs
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Anchor == "" {
		result.Anchor = defaults.Anchor
	}

	if result.FutureCount == nil {
		result.FutureCount = defaults.FutureCount
	}
	if result.SpanYears == nil {
		result.SpanYears = defaults.SpanYears
	}

	// Port 0 means "not configured" in every source
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Int returns a pointer to v for the optional integer fields.
func Int(v int) *int {
	return &v
}

// CountOr returns the configured future count, or def when unset.
func (c *Config) CountOr(def int) int {
	if c.FutureCount == nil {
		return def
	}
	return *c.FutureCount
}

// SpanOr returns the configured span in years, or def when unset.
func (c *Config) SpanOr(def int) int {
	if c.SpanYears == nil {
		return def
	}
	return *c.SpanYears
}

// ResolveAPIKey returns the configured API key, falling back to the
// provider's environment variables.
func (c *Config) ResolveAPIKey(provider llm.Provider) string {
	if c.APIKey != "" {
		return c.APIKey
	}
	for _, name := range llm.APIKeyEnv(provider) {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
