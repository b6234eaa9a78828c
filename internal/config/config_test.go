package config

import (
	"os"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("STORE_PATH")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != "3001" {
		t.Fatalf("default port = %q, want 3001", cfg.Server.Port)
	}
	if cfg.Store.Path != "db.json" {
		t.Fatalf("default store path = %q, want db.json", cfg.Store.Path)
	}
	if cfg.RateLimit.Enabled {
		t.Fatalf("rate limiter should be disabled by default")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	os.Setenv("SERVER_PORT", "8080")
	os.Setenv("STORE_PATH", "/tmp/neuronest.json")
	os.Setenv("RATE_LIMIT_ENABLED", "true")
	defer func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("STORE_PATH")
		os.Unsetenv("RATE_LIMIT_ENABLED")
	}()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != "8080" || cfg.Store.Path != "/tmp/neuronest.json" {
		t.Fatalf("unexpected config values: %+v", cfg)
	}
	if !cfg.RateLimit.Enabled {
		t.Fatalf("rate limiter should be enabled via env")
	}
}
