package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// AppName is the configuration directory name.
	AppName = "taskdeck"

	// ConfigFileName is the config file name inside the user config dir.
	ConfigFileName = "taskdeck.toml"
)

// findUserConfigFile locates the user-level config file, honoring
// XDG_CONFIG_HOME. Returns "" when none exists.
func findUserConfigFile() string {
	dir := userConfigDir()
	if dir == "" {
		return ""
	}
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// findProjectConfigFile locates a per-directory config file in the current
// working directory. Returns "" when none exists.
func findProjectConfigFile() string {
	for _, name := range []string{ConfigFileName, "." + ConfigFileName} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppName)
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
	}
	return path
}
