package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/alternate-futures/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePort(t *testing.T) {
	tests := []struct {
		name    string
		port    int
		env     string
		want    int
		wantErr bool
	}{
		{name: "configured port wins", port: 9000, env: "8000", want: 9000},
		{name: "env used", env: "8000", want: 8000},
		{name: "default", want: 5175},
		{name: "bad env", env: "http", wantErr: true},
		{name: "out of range env", env: "70000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolvePort(tt.port, tt.env)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewCompletionClient(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, err := newCompletionClient(context.Background(), config.Config{Provider: "anthropic"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")

	_, err = newCompletionClient(context.Background(), config.Config{Provider: "mystery", APIKey: "k"})
	require.Error(t, err)

	client, err := newCompletionClient(context.Background(), config.Config{Provider: "anthropic", APIKey: "k", Model: "claude-custom"})
	require.NoError(t, err)
	assert.Equal(t, "claude-custom", client.Model())
	assert.NoError(t, client.Close())
}

func TestResolveServeConfig_PortFromFile(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("LLM_MODEL", "claude-env")
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"port":6100,"provider":"anthropic"}`), 0644))

	serveConfigPath = cfgPath
	t.Cleanup(func() { serveConfigPath = "" })

	cfg, err := resolveServeConfig(serveCmd)
	require.NoError(t, err)
	assert.Equal(t, 6100, cfg.Port)
	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "claude-env", cfg.Model)

	port, err := resolvePort(cfg.Port, "8000")
	require.NoError(t, err)
	assert.Equal(t, 6100, port)
}

func TestResolveServeConfig_FlagOverridesFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"port":6100}`), 0644))

	flags := serveCmd.Flags()
	serveConfigPath = cfgPath
	require.NoError(t, flags.Set("port", "7200"))
	t.Cleanup(func() {
		serveConfigPath = ""
		servePort = 0
		flags.Lookup("port").Changed = false
	})

	cfg, err := resolveServeConfig(serveCmd)
	require.NoError(t, err)
	assert.Equal(t, 7200, cfg.Port)
}

func TestResolveServeConfig_InvalidPort(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"port":70000}`), 0644))

	serveConfigPath = cfgPath
	t.Cleanup(func() { serveConfigPath = "" })

	_, err := resolveServeConfig(serveCmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}
