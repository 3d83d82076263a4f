package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/imdario/mergo"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/just-nibble/commit-tracker/internal/adapters/api"
	"github.com/just-nibble/commit-tracker/internal/adapters/validators"
	"github.com/just-nibble/commit-tracker/internal/core/ui"
)

// EnvPrefix prefixes environment overrides. Nested keys use a double
// underscore: TRACKER_SERVER__PORT sets server.port and
// TRACKER_GITHUB__BASE_URL sets github.base_url.
const EnvPrefix = "TRACKER_"

type Config struct {
	Server            ServerConfig    `koanf:"server"`
	GitHub            GitHubConfig    `koanf:"github"`
	Relay             RelayConfig     `koanf:"relay"`
	UI                UIConfig        `koanf:"ui"`
	DefaultRepository validators.Repo `koanf:"default_repository"`
	Debug             bool            `koanf:"debug"`
}

type ServerConfig struct {
	Port            int  `koanf:"port"`
	AllowAllOrigins bool `koanf:"allow_all_origins"`
}

// GitHubConfig configures the commit-listing endpoint. A zero timeout means
// requests are never cut short.
type GitHubConfig struct {
	BaseURL string        `koanf:"base_url"`
	Timeout time.Duration `koanf:"timeout"`
}

type RelayConfig struct {
	URL       string        `koanf:"url"`
	AccessKey string        `koanf:"access_key"`
	Timeout   time.Duration `koanf:"timeout"`
}

type UIConfig struct {
	Title      string `koanf:"title"`
	Breakpoint int    `koanf:"breakpoint"`
	Timezone   string `koanf:"timezone"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		GitHub: GitHubConfig{BaseURL: api.DefaultGitHubURL},
		Relay:  RelayConfig{URL: api.DefaultRelayURL},
		UI: UIConfig{
			Title:      "GitHub Commit Tracker",
			Breakpoint: ui.DefaultBreakpoint,
			Timezone:   "UTC",
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (TRACKER_*). A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Merge copies every non-zero field of overrides onto c.
func (c *Config) Merge(overrides Config) error {
	if err := mergo.Merge(c, overrides, mergo.WithOverride); err != nil {
		return fmt.Errorf("merging overrides: %w", err)
	}
	return nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	if err := validateURL("github.base_url", c.GitHub.BaseURL); err != nil {
		return err
	}
	if err := validateURL("relay.url", c.Relay.URL); err != nil {
		return err
	}
	if c.GitHub.Timeout < 0 || c.Relay.Timeout < 0 {
		return fmt.Errorf("timeouts must be non-negative")
	}
	if c.UI.Breakpoint <= 0 {
		return fmt.Errorf("ui.breakpoint must be positive")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.DefaultRepository != "" {
		if err := c.DefaultRepository.Validate(); err != nil {
			return fmt.Errorf("default_repository %q: %w", c.DefaultRepository, err)
		}
	}
	return nil
}

// Location returns the time zone commit timestamps are shown in.
func (c *Config) Location() (*time.Location, error) {
	if c.UI.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.UI.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid ui.timezone %q: %w", c.UI.Timezone, err)
	}
	return loc, nil
}

func validateURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("invalid %s %q: must be an absolute http(s) URL", key, raw)
	}
	return nil
}
