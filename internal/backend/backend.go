// Package backend constructs the configured storage backend.
package backend

import (
	"fmt"
	"log/slog"

	"expenses/internal/storage"
)

// Type identifies a storage backend.
type Type string

const (
	JSONBackend   Type = "json"
	SQLiteBackend Type = "sqlite"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case JSONBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc releases resources held by a backend.
type CleanupFunc func() error

// Result contains the store instance and optional cleanup function.
type Result struct {
	Store   storage.Store
	Cleanup CleanupFunc
}

// Config holds what each backend needs to open its store.
type Config struct {
	Type Type

	// JSON specific
	FilePath string

	// SQLite specific
	DBPath string
}

// Factory creates stores based on configuration.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// Open constructs the store selected by the config.
func (f *Factory) Open(cfg Config) (*Result, error) {
	if !cfg.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.Type)
	}

	switch cfg.Type {
	case SQLiteBackend:
		store, err := storage.NewSQLiteStore(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		f.logger.Debug("Initialized sqlite backend", "db_path", cfg.DBPath)
		return &Result{Store: store, Cleanup: store.Close}, nil
	default:
		store, err := storage.NewJSONStore(cfg.FilePath)
		if err != nil {
			return nil, fmt.Errorf("initialize json store: %w", err)
		}
		f.logger.Debug("Initialized json backend", "path", cfg.FilePath)
		return &Result{Store: store, Cleanup: nil}, nil
	}
}
