package config

import (
	"flag"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/szydag/taskdeck/internal/task"
)

// Load loads configuration from multiple sources in priority order:
//  1. Defaults
//  2. User config file (~/.config/taskdeck/taskdeck.toml)
//  3. Project config file (taskdeck.toml or .taskdeck.toml in the cwd)
//  4. .env file, then environment variables
//  5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if path := findUserConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", path, err)
		}
	}

	if path := findProjectConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", path, err)
		}
	}

	loadDotEnv()
	loadFromEnv(cfg)

	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	if err := finalizeConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadConfigFile loads TOML config from the given file.
func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// parseFlags registers the global flags on fs and parses args. An explicit
// --config file overrides the discovered ones and is applied before the
// other flags take effect.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	configFile := fs.String("config", "", "Path to a config file")
	baseURL := fs.String("base-url", "", "Task API base URL")
	timeout := fs.Int("timeout", 0, "Request timeout in seconds")
	filter := fs.String("filter", "", "Initial list filter (all|pending|done)")
	logDir := fs.String("log-dir", "", "Log directory")
	logLevel := fs.String("log-level", "", "Log level (debug|info|warn|error)")
	quiet := fs.Bool("quiet", false, "Suppress informational output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *configFile != "" {
		if err := loadConfigFile(cfg, *configFile); err != nil {
			return fmt.Errorf("loading config file %s: %w", *configFile, err)
		}
	}
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
	}
	if *timeout > 0 {
		cfg.TimeoutSeconds = *timeout
	}
	if *filter != "" {
		cfg.Filter = *filter
	}
	if *logDir != "" {
		cfg.LogDir = *logDir
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	cfg.Quiet = *quiet

	return nil
}

// finalizeConfig expands paths and validates values.
func finalizeConfig(cfg *Config) error {
	cfg.LogDir = expandPath(cfg.LogDir)
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base_url %q", cfg.BaseURL)
	}

	if _, err := task.ParseFilter(cfg.Filter); err != nil {
		return err
	}

	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = DefaultTimeoutSeconds
	}

	return nil
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// InitialFilter returns the configured list filter.
func (c *Config) InitialFilter() task.Filter {
	f, err := task.ParseFilter(c.Filter)
	if err != nil {
		return task.FilterAll
	}
	return f
}
