package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if cfg.General.OutputFormat != "human" {
		t.Errorf("expected default output_format human, got %q", cfg.General.OutputFormat)
	}
	if cfg.Pocket.Endpoint != "" {
		t.Errorf("embedded config should leave the endpoint to the client, got %q", cfg.Pocket.Endpoint)
	}
	if cfg.Pocket.AccessToken != "" {
		t.Error("embedded config must not carry an access token")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	content := `general:
  output_format: json
pocket:
  consumer_key: key-123
  access_token: token-456
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GetOutputFormat() != "json" {
		t.Errorf("expected json, got %s", cfg.GetOutputFormat())
	}
	if cfg.PocketConsumerKey() != "key-123" {
		t.Errorf("expected key-123, got %s", cfg.PocketConsumerKey())
	}
	if cfg.PocketAccessToken() != "token-456" {
		t.Errorf("expected token-456, got %s", cfg.PocketAccessToken())
	}
	// Endpoint not set in file
	if cfg.PocketEndpoint() != "" {
		t.Errorf("expected no endpoint override, got %s", cfg.PocketEndpoint())
	}
}

func TestLoadNonexistentWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sub", "config.yaml")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GetOutputFormat() != "human" {
		t.Errorf("expected default format, got %s", cfg.GetOutputFormat())
	}
	info, err := os.Stat(cfgPath)
	if err != nil {
		t.Fatalf("expected defaults written to %s: %v", cfgPath, err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("expected 0600 permissions, got %o", perm)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("general: [unclosed"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(cfgPath); err == nil {
		t.Error("expected parse error")
	}
}

func TestCredentialsFromEnv(t *testing.T) {
	t.Setenv(EnvConsumerKey, "env-key")
	t.Setenv(EnvAccessToken, "env-token")

	cfg := &Config{}
	if got := cfg.PocketConsumerKey(); got != "env-key" {
		t.Errorf("expected env-key, got %q", got)
	}
	if got := cfg.PocketAccessToken(); got != "env-token" {
		t.Errorf("expected env-token, got %q", got)
	}

	cfg.Pocket.AccessToken = "file-token"
	if got := cfg.PocketAccessToken(); got != "file-token" {
		t.Errorf("config value should win over env, got %q", got)
	}
}

func TestMissingAccessToken(t *testing.T) {
	t.Setenv(EnvAccessToken, "")
	cfg := &Config{}
	if got := cfg.PocketAccessToken(); got != "" {
		t.Errorf("expected empty token, got %q", got)
	}
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetOutputFormat(); got != "human" {
		t.Errorf("expected human, got %s", got)
	}
	if got := cfg.GetLogLevel(); got != "warn" {
		t.Errorf("expected warn, got %s", got)
	}
	if got := cfg.PocketEndpoint(); got != "" {
		t.Errorf("expected empty endpoint, got %s", got)
	}
}

func TestValidateUnknownOutputFormat(t *testing.T) {
	cfg := &Config{General: General{OutputFormat: "xml"}}
	if err := validate(cfg); err == nil {
		t.Error("expected error for unknown output format")
	}
}

func TestValidateOutputFormatCaseInsensitive(t *testing.T) {
	cfg := &Config{General: General{OutputFormat: "JSON"}}
	if err := validate(cfg); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateUnknownLogLevel(t *testing.T) {
	cfg := &Config{General: General{LogLevel: "loud"}}
	if err := validate(cfg); err == nil {
		t.Error("expected error for unknown log level")
	}
}

func TestValidateInvalidEndpointScheme(t *testing.T) {
	cfg := &Config{Pocket: Pocket{Endpoint: "file:///etc/passwd"}}
	if err := validate(cfg); err == nil {
		t.Error("expected error for file:// endpoint")
	}
}

func TestValidateAcceptsHTTPEndpoint(t *testing.T) {
	cfg := &Config{Pocket: Pocket{Endpoint: "http://localhost:8080/v3/get"}}
	if err := validate(cfg); err != nil {
		t.Errorf("unexpected error for http endpoint: %v", err)
	}
}

func TestEndpointOverride(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("pocket:\n  endpoint: http://127.0.0.1:9999/v3/get\n"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.PocketEndpoint(); got != "http://127.0.0.1:9999/v3/get" {
		t.Errorf("expected override, got %q", got)
	}
}
