// Package config tests configuration loading.
package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL: got %q, want %q", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("TimeoutSeconds: got %d, want %d", cfg.TimeoutSeconds, DefaultTimeoutSeconds)
	}
	if cfg.Filter != DefaultFilter {
		t.Errorf("Filter: got %q, want %q", cfg.Filter, DefaultFilter)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

func TestLoadConfigFileFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taskdeck.toml")
	content := `
base_url = "http://api.example.com:8080"
timeout_seconds = 3
filter = "pending"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(newFlagSet(), []string{"--config", path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "http://api.example.com:8080" {
		t.Errorf("BaseURL: got %q", cfg.BaseURL)
	}
	if cfg.TimeoutSeconds != 3 {
		t.Errorf("TimeoutSeconds: got %d, want 3", cfg.TimeoutSeconds)
	}
	if cfg.Filter != "pending" {
		t.Errorf("Filter: got %q, want pending", cfg.Filter)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvBaseURL, "http://env.example.com")
	t.Setenv(EnvTimeoutSeconds, "7")
	t.Setenv(EnvFilter, "done")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "http://env.example.com" {
		t.Errorf("BaseURL: got %q", cfg.BaseURL)
	}
	if cfg.TimeoutSeconds != 7 {
		t.Errorf("TimeoutSeconds: got %d, want 7", cfg.TimeoutSeconds)
	}
	if cfg.Filter != "done" {
		t.Errorf("Filter: got %q, want done", cfg.Filter)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want debug", cfg.LogLevel)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv(EnvBaseURL, "http://env.example.com")

	cfg, err := Load(newFlagSet(), []string{"--base-url", "http://flag.example.com", "--quiet"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "http://flag.example.com" {
		t.Errorf("BaseURL: got %q, want flag value", cfg.BaseURL)
	}
	if !cfg.Quiet {
		t.Error("Quiet should be set")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	if _, err := Load(newFlagSet(), []string{"--base-url", "not a url"}); err == nil {
		t.Error("expected error for invalid base URL")
	}
	if _, err := Load(newFlagSet(), []string{"--filter", "bogus"}); err == nil {
		t.Error("expected error for invalid filter")
	}
}

func TestTimeout(t *testing.T) {
	cfg := &Config{TimeoutSeconds: 3}
	if got := cfg.Timeout(); got != 3*time.Second {
		t.Errorf("Timeout: got %s, want 3s", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	if got := expandPath("~/logs"); got != filepath.Join(home, "logs") {
		t.Errorf("expandPath: got %q", got)
	}
	if got := expandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("expandPath should leave absolute paths alone, got %q", got)
	}
}
