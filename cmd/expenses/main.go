package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"expenses/internal/backend"
	"expenses/internal/cli"
	"expenses/internal/config"
	"expenses/internal/logging"
	"expenses/internal/services"
)

func main() {
	os.Exit(run())
}

func run() int {
	// .env is optional; useful for local development
	_ = godotenv.Load()

	cfg := config.Load()

	// Diagnostics go to stderr so command output on stdout stays clean
	logger := logging.New(os.Stderr, cfg.SlogLevel())
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", logging.FieldError, err)
		return 1
	}

	factory := backend.NewFactory(logger)
	result, err := factory.Open(backend.Config{
		Type:     backend.Type(cfg.Backend),
		FilePath: cfg.FilePath,
		DBPath:   cfg.DBPath,
	})
	if err != nil {
		logger.Error("Failed to initialize storage backend", logging.FieldError, err, logging.FieldBackend, cfg.Backend)
		return 1
	}
	defer func() {
		if result.Cleanup != nil {
			if err := result.Cleanup(); err != nil {
				logger.Warn("Backend cleanup failed", logging.FieldError, err)
			}
		}
	}()

	svc := services.NewExpenseService(result.Store)
	root := cli.NewRootCmd(svc)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
