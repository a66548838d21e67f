package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const minimalConfig = `
database:
  user: api
  password: ${SOCIAL_WALLET_TEST_DB_PASSWORD}
identity:
  base_url: https://auth.example.com
  app_id: app-123
  app_secret: secret
`

func TestParseAPIServer_AppliesDefaults(t *testing.T) {
	t.Setenv("SOCIAL_WALLET_TEST_DB_PASSWORD", "hunter2")

	cfg, err := ParseAPIServer([]byte(minimalConfig))
	if err != nil {
		t.Fatalf("ParseAPIServer() failed: %v", err)
	}

	if cfg.Server.Port != 8081 {
		t.Fatalf("expected default port 8081, got %d", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 30*time.Second {
		t.Fatalf("expected default shutdown timeout 30s, got %s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Database.Host != "localhost" || cfg.Database.Port != 5432 {
		t.Fatalf("unexpected database defaults: %+v", cfg.Database)
	}
	if cfg.Database.Password != "hunter2" {
		t.Fatalf("expected password expanded from env, got %q", cfg.Database.Password)
	}
	if cfg.Identity.EmbeddedWalletClientType != "privy" {
		t.Fatalf("expected default embedded wallet client type, got %q", cfg.Identity.EmbeddedWalletClientType)
	}
	if cfg.Tasks.Workers != 4 || cfg.Tasks.QueueSize != 256 {
		t.Fatalf("unexpected task defaults: %+v", cfg.Tasks)
	}
	if cfg.Profile.PageSize != 20 {
		t.Fatalf("expected default page size 20, got %d", cfg.Profile.PageSize)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestParseAPIServer_OverridesNestedValues(t *testing.T) {
	raw := minimalConfig + `
server:
  port: 9000
  read_timeout: 5s
profile:
  page_size: 50
`
	cfg, err := ParseAPIServer([]byte(raw))
	if err != nil {
		t.Fatalf("ParseAPIServer() failed: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Fatalf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Fatalf("expected host default to survive partial override, got %q", cfg.Server.Host)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Fatalf("expected read timeout 5s, got %s", cfg.Server.ReadTimeout)
	}
	if cfg.Profile.PageSize != 50 {
		t.Fatalf("expected page size 50, got %d", cfg.Profile.PageSize)
	}
}

func TestParseAPIServer_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing identity", "database:\n  user: api\n"},
		{"bad log level", minimalConfig + "logging:\n  level: verbose\n"},
		{"bad jwks url", minimalConfig + "auth:\n  jwks_url: not-a-url\n"},
		{"page size too large", minimalConfig + "profile:\n  page_size: 1000\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAPIServer([]byte(tt.raw))
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), "config validation failed") {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestLoadAPIServer_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(minimalConfig), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadAPIServer(path)
	if err != nil {
		t.Fatalf("LoadAPIServer() failed: %v", err)
	}
	if cfg.Identity.AppID != "app-123" {
		t.Fatalf("expected app id app-123, got %q", cfg.Identity.AppID)
	}

	if _, err := LoadAPIServer(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
