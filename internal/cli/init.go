// Package cli provides common startup utilities shared by the binaries
// under cmd/.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"billtrack/internal/config"
	"billtrack/internal/log"
	"billtrack/internal/storage"
)

// SetupLogger initializes structured logging and installs it as the
// default logger.
func SetupLogger() *slog.Logger {
	return log.Setup()
}

// LoadEnvFile loads the .env file for local development. Errors are
// ignored since the file is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it, exiting
// the process on validation failure.
func LoadAndValidateConfig(logger *slog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// OpenStorage builds the configured slot store, exiting the process on
// failure. The returned cleanup function may be nil.
func OpenStorage(logger *slog.Logger, cfg *config.Config) (storage.SlotStore, storage.CleanupFunc) {
	slots, cleanup, err := storage.Open(storage.Config{
		Type:         storage.BackendType(cfg.DataBackend),
		DataDir:      cfg.DataDir,
		SQLiteDBPath: cfg.SQLiteDBPath,
	}, log.WithComponent(logger, "storage"))
	if err != nil {
		logger.Error("Failed to initialize storage backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	return slots, cleanup
}
