package config

import (
	"os"
	"strconv"

	"greep/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	ImportLog ImportLogConfig
	Import    ImportConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DatabaseConfig holds the product database connection settings.
// URL may be empty; analyze-only flows work without a database and the
// writer reports a database error when a confirm is attempted.
type DatabaseConfig struct {
	URL string
}

// ImportLogConfig holds the local import-ledger settings
type ImportLogConfig struct {
	Path string
}

// ImportConfig holds upload limits and scratch paths
type ImportConfig struct {
	MaxUploadBytes int64
	TempDir        string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		ImportLog: ImportLogConfig{
			Path: getEnvOrDefault("IMPORT_LOG_PATH", "./imports.db"),
		},
		Import: ImportConfig{
			MaxUploadBytes: getEnvInt64OrDefault("MAX_UPLOAD_BYTES", 16<<20),
			TempDir:        getEnvOrDefault("IMPORT_TEMP_DIR", os.TempDir()),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.ImportLog.Path == "" {
		return errors.ConfigInvalid("import log path is required")
	}
	if config.Import.MaxUploadBytes <= 0 {
		return errors.ConfigInvalid("max upload bytes must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
