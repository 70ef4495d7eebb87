package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/jonathan/alternate-futures/internal/config"
	"github.com/jonathan/alternate-futures/internal/llm"
	"github.com/jonathan/alternate-futures/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveConfigPath string
	servePort       int
	serveProvider   string
	serveModel      string
	serveAPIKey     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Start an HTTP server that exposes /api/generate, /api/timeline, /api/futures and /api/futures/stream.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (port, provider, model, api_key; overridden by flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to config port, then PORT env var, then 5175)")
	serveCmd.Flags().StringVar(&serveProvider, "provider", "", "Completion provider: openai, gemini or anthropic (defaults to LLM_PROVIDER env var, then openai)")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Model name (defaults to LLM_MODEL env var, then the provider default)")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "API key (defaults to the provider's env var)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveServeConfig(cmd)
	if err != nil {
		return err
	}
	port, err := resolvePort(cfg.Port, os.Getenv("PORT"))
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, err := newCompletionClient(ctx, cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{Port: port, Client: client})
	if err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(ctx)
}

// resolveServeConfig merges the config file under explicitly set flags and
// fills the provider and model from the environment.
func resolveServeConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = servePort
	}
	if flags.Changed("provider") {
		cfg.Provider = serveProvider
	}
	if flags.Changed("model") {
		cfg.Model = serveModel
	}
	if flags.Changed("api-key") {
		cfg.APIKey = serveAPIKey
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Provider: os.Getenv("LLM_PROVIDER"),
		Model:    os.Getenv("LLM_MODEL"),
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// resolvePort picks the configured port (flag or config file), then the PORT
// environment value, then the default.
func resolvePort(configured int, envPort string) (int, error) {
	if configured != 0 {
		return configured, nil
	}
	if envPort == "" {
		return server.DefaultPort, nil
	}
	port, err := strconv.Atoi(envPort)
	if err != nil || port <= 0 || port > 65535 {
		return 0, fmt.Errorf("invalid PORT %q", envPort)
	}
	return port, nil
}

// newCompletionClient builds the llm.Client described by cfg.
func newCompletionClient(ctx context.Context, cfg config.Config) (llm.Client, error) {
	provider, err := llm.ParseProvider(cfg.Provider)
	if err != nil {
		return nil, err
	}

	apiKey := cfg.ResolveAPIKey(provider)
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required (set %s environment variable or use --api-key flag)", llm.APIKeyEnv(provider)[0])
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(provider).WithModel(cfg.Model), apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return client, nil
}
