package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

const (
	EnvConsumerKey = "READLATER_POCKET_CONSUMER_KEY"
	EnvAccessToken = "READLATER_POCKET_ACCESS_TOKEN"
)

type General struct {
	OutputFormat string `yaml:"output_format"` // "human" or "json"
	LogLevel     string `yaml:"log_level,omitempty"`
}

type Pocket struct {
	ConsumerKey string `yaml:"consumer_key"`
	AccessToken string `yaml:"access_token,omitempty"`
	Endpoint    string `yaml:"endpoint,omitempty"`
}

type Config struct {
	General General `yaml:"general"`
	Pocket  Pocket  `yaml:"pocket"`
}

// PocketConsumerKey returns the consumer key, preferring the config file over
// the environment.
func (c *Config) PocketConsumerKey() string {
	if c.Pocket.ConsumerKey != "" {
		return c.Pocket.ConsumerKey
	}
	return os.Getenv(EnvConsumerKey)
}

// PocketAccessToken returns the resolved access token (config or env var).
// An empty result means authentication has not happened yet.
func (c *Config) PocketAccessToken() string {
	if c.Pocket.AccessToken != "" {
		return c.Pocket.AccessToken
	}
	return os.Getenv(EnvAccessToken)
}

// PocketEndpoint returns the configured endpoint override. Empty means the
// client's default.
func (c *Config) PocketEndpoint() string {
	return c.Pocket.Endpoint
}

// GetOutputFormat returns the configured output format, defaulting to human.
func (c *Config) GetOutputFormat() string {
	if c.General.OutputFormat == "" {
		return "human"
	}
	return strings.ToLower(c.General.OutputFormat)
}

func (c *Config) GetLogLevel() string {
	if c.General.LogLevel == "" {
		return "warn"
	}
	return c.General.LogLevel
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "readlater", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := *defaults
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	// Credentials end up in this file, keep it private.
	return os.WriteFile(path, data, 0o600)
}

func validate(cfg *Config) error {
	switch cfg.GetOutputFormat() {
	case "human", "json":
	default:
		return fmt.Errorf("general: unknown output_format %q (valid: human, json)", cfg.General.OutputFormat)
	}

	switch strings.ToLower(cfg.GetLogLevel()) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("general: unknown log_level %q (valid: debug, info, warn, error)", cfg.General.LogLevel)
	}

	if cfg.Pocket.Endpoint != "" {
		u, err := url.Parse(cfg.Pocket.Endpoint)
		if err != nil {
			return fmt.Errorf("pocket: invalid endpoint: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("pocket: endpoint scheme must be http or https, got %q", u.Scheme)
		}
	}
	return nil
}
