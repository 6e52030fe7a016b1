package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.GetAPIEndpoint() != DefaultEndpoint {
		t.Errorf("Expected default endpoint, got %q", cfg.GetAPIEndpoint())
	}
	if cfg.GetAPITimeout() != 30*time.Second {
		t.Errorf("Expected 30s timeout, got %v", cfg.GetAPITimeout())
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected info level, got %q", cfg.Logging.Level)
	}
}

func TestGetAPIEndpointTrimsTrailingSlash(t *testing.T) {
	cfg := &Config{API: APIConfig{Endpoint: "http://localhost:5001/api/v1/"}}

	if got := cfg.GetAPIEndpoint(); got != "http://localhost:5001/api/v1" {
		t.Errorf("Expected trimmed endpoint, got %q", got)
	}
}

func TestSetAPIEndpoint(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.SetAPIEndpoint("not-a-url"); err == nil {
		t.Error("Expected error for scheme-less endpoint")
	}
	if err := cfg.SetAPIEndpoint("http://localhost:5001/api/v1"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := []byte("api:\n  endpoint: http://localhost:5001/api/v1\n  timeout: 5s\nlogging:\n  level: debug\n  format: json\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.GetAPIEndpoint() != "http://localhost:5001/api/v1" {
		t.Errorf("Expected file endpoint, got %q", cfg.GetAPIEndpoint())
	}
	if cfg.GetAPITimeout() != 5*time.Second {
		t.Errorf("Expected 5s timeout, got %v", cfg.GetAPITimeout())
	}
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Setenv("MANTHAN_API_ENDPOINT", "http://localhost:9999/api/v1")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.GetAPIEndpoint() != "http://localhost:9999/api/v1" {
		t.Errorf("Expected env endpoint, got %q", cfg.GetAPIEndpoint())
	}
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	written, err := WriteDefault(path)
	if err != nil {
		t.Fatalf("Failed to write default config: %v", err)
	}
	if written != path {
		t.Errorf("Expected written path %q, got %q", path, written)
	}

	// Second write must refuse to clobber.
	if _, err := WriteDefault(path); err == nil {
		t.Error("Expected error writing over existing config")
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load written config: %v", err)
	}
	if cfg.GetAPIEndpoint() != DefaultEndpoint {
		t.Errorf("Expected default endpoint, got %q", cfg.GetAPIEndpoint())
	}
}

func TestGetSessionPathDefault(t *testing.T) {
	cfg := &Config{}

	path := cfg.GetSessionPath()
	if filepath.Base(path) != "session.json" {
		t.Errorf("Expected session.json, got %q", path)
	}

	cfg.Sessions.Path = "/tmp/custom.json"
	if cfg.GetSessionPath() != "/tmp/custom.json" {
		t.Errorf("Expected override path, got %q", cfg.GetSessionPath())
	}
}
