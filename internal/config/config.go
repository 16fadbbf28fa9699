package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	// Storage backend: "json" (default) or "sqlite"
	Backend string

	// JSON backend
	FilePath string

	// SQLite backend
	DBPath string

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		Backend:  getEnv("EXPENSES_BACKEND", "json"),
		FilePath: getEnv("EXPENSES_FILE", defaultFilePath()),
		DBPath:   getEnv("EXPENSES_DB_PATH", defaultDBPath()),
		LogLevel: getEnv("EXPENSES_LOG_LEVEL", "warn"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	switch c.Backend {
	case "json", "sqlite":
	default:
		errors = append(errors, fmt.Sprintf("invalid backend '%s': must be one of [json sqlite]", c.Backend))
	}

	if c.Backend == "json" && c.FilePath == "" {
		errors = append(errors, "store file path cannot be empty when using json backend")
	}

	if c.Backend == "sqlite" {
		if c.DBPath == "" {
			errors = append(errors, "database path cannot be empty when using sqlite backend")
		} else if dir := filepath.Dir(c.DBPath); dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create database directory '%s': %v", dir, err))
				}
			}
		}
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// SlogLevel maps the configured level onto slog's scale.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func defaultFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".expenses.json"
	}
	return filepath.Join(home, ".expenses.json")
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".expenses.db"
	}
	return filepath.Join(home, ".expenses.db")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
