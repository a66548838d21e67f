package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLogger_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.log")

	logger, err := NewLogger(LoggingConfig{Level: "debug", Format: "json", OutputPath: path})
	if err != nil {
		t.Fatalf("NewLogger() failed: %v", err)
	}
	logger.Debug("challenge issued")
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	line := string(raw)
	if !strings.Contains(line, `"msg":"challenge issued"`) {
		t.Fatalf("expected json message in log, got %q", line)
	}
	if !strings.Contains(line, `"app":"social-wallet-api"`) {
		t.Fatalf("expected app field in log, got %q", line)
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	if _, err := NewLogger(LoggingConfig{Level: "loud", Format: "console"}); err == nil {
		t.Fatal("expected error for invalid level")
	}
}
