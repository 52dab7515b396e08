package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names. Each overrides the corresponding file value.
const (
	EnvBaseURL        = "TASKDECK_BASE_URL"
	EnvTimeoutSeconds = "TASKDECK_TIMEOUT_SECONDS"
	EnvFilter         = "TASKDECK_FILTER"
	EnvLogDir         = "TASKDECK_LOG_DIR"
	EnvLogLevel       = "TASKDECK_LOG_LEVEL"
	EnvLogFormat      = "TASKDECK_LOG_FORMAT"
)

// loadDotEnv loads a .env file from the working directory into the process
// environment without overriding variables that are already set. A missing
// file is not an error.
func loadDotEnv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	_ = godotenv.Load()
}

// loadFromEnv overrides config values from TASKDECK_* variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvTimeoutSeconds); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutSeconds = n
		}
	}
	if v := os.Getenv(EnvFilter); v != "" {
		cfg.Filter = v
	}
	if v := os.Getenv(EnvLogDir); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}
}
