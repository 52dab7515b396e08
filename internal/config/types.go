// Package config handles configuration loading and defaults.
package config

// Default values.
const (
	DefaultBaseURL        = "http://localhost:3000"
	DefaultTimeoutSeconds = 10
	DefaultFilter         = "all"
	DefaultLogDir         = "~/.taskdeck"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
)

// Config holds the full configuration for taskdeck.
type Config struct {
	// API endpoint
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`

	// Initial list filter (all, pending, done)
	Filter string `toml:"filter"`

	// Logging
	LogDir    string `toml:"log_dir"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	// Quiet suppresses informational output in one-shot commands.
	// Flag-only, never persisted.
	Quiet bool `toml:"-"`
}

func setDefaults(cfg *Config) {
	cfg.BaseURL = DefaultBaseURL
	cfg.TimeoutSeconds = DefaultTimeoutSeconds
	cfg.Filter = DefaultFilter
	cfg.LogDir = DefaultLogDir
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}
