package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.yml")
	yml := `
server:
  port: 9090
github:
  timeout: 5s
relay:
  access_key: from-file
ui:
  breakpoint: 1024
default_repository: octocat/hello-world
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))
	t.Setenv("TRACKER_RELAY__ACCESS_KEY", "from-env")
	t.Setenv("TRACKER_DEBUG", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.GitHub.Timeout)
	assert.Equal(t, "from-env", cfg.Relay.AccessKey)
	assert.Equal(t, 1024, cfg.UI.Breakpoint)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "https://api.github.com", cfg.GitHub.BaseURL, "unset keys keep defaults")
	assert.NoError(t, cfg.Validate())
}

func TestLoadNestedEnvKeys(t *testing.T) {
	t.Setenv("TRACKER_SERVER__PORT", "9999")
	t.Setenv("TRACKER_GITHUB__BASE_URL", "https://ghe.example.com/api/v3")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "https://ghe.example.com/api/v3", cfg.GitHub.BaseURL)
}

func TestMerge(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Merge(Config{Server: ServerConfig{Port: 3000}}))
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "GitHub Commit Tracker", cfg.UI.Title)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port", func(c *Config) { c.Server.Port = 70000 }},
		{"github url", func(c *Config) { c.GitHub.BaseURL = "api.github.com" }},
		{"relay url", func(c *Config) { c.Relay.URL = "ftp://relay" }},
		{"timeout", func(c *Config) { c.Relay.Timeout = -time.Second }},
		{"breakpoint", func(c *Config) { c.UI.Breakpoint = 0 }},
		{"timezone", func(c *Config) { c.UI.Timezone = "Mars/Olympus" }},
		{"repository", func(c *Config) { c.DefaultRepository = "just-a-name" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
