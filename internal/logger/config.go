// Package logger wraps log/slog with printf-style helpers and package filters.
package logger

import (
	"log/slog"
	"strings"
)

// Config holds all settings for the logger.
type Config struct {
	// LogLevel is the minimum level: debug, info, warn or error.
	LogLevel string `toml:"level"`

	// LogFilePath is the output file. Empty or "-" means stderr.
	LogFilePath string `toml:"file"`

	// EnabledPackages only logs records from these packages when non-empty.
	// A package is the immediate directory name, e.g. "editor" or "layout".
	EnabledPackages []string `toml:"enabled_packages"`
	// DisabledPackages drops records from these packages. Overrides EnabledPackages.
	DisabledPackages []string `toml:"disabled_packages"`

	level               slog.Level
	enabledPackagesSet  map[string]struct{}
	disabledPackagesSet map[string]struct{}
}

func NewConfig() Config {
	return Config{LogLevel: "info"}
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func (c *Config) process() {
	c.level = ParseLevel(c.LogLevel)
	c.enabledPackagesSet = sliceToSet(c.EnabledPackages)
	c.disabledPackagesSet = sliceToSet(c.DisabledPackages)
}

func sliceToSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			set[strings.ToLower(item)] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}
