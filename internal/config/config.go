package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Port    string
	Env     string
	BaseURL string

	Storage StorageConfig
	Worker  WorkerConfig
}

// StorageConfig contains filesystem layout parameters for the record store
// and the artifact directories.
type StorageConfig struct {
	DataDir     string
	FrontendDir string
}

// WorkerConfig contains interval configuration for background workers.
type WorkerConfig struct {
	// BackupInterval is the period between store snapshots. Zero disables
	// the backup worker.
	BackupInterval time.Duration
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("ENV", "development")

	// Public base URL used to build the certificate links embedded in QR codes.
	cfg.BaseURL = strings.TrimRight(getEnv("BASE_URL", "http://127.0.0.1:8080"), "/")

	// Storage
	cfg.Storage = StorageConfig{
		DataDir:     getEnv("DATA_DIR", "data"),
		FrontendDir: getEnv("FRONTEND_DIR", "frontend"),
	}

	// Workers (durations)
	var err error
	if cfg.Worker.BackupInterval, err = parseDurationEnv("BACKUP_INTERVAL", "1h"); err != nil {
		return nil, fmt.Errorf("invalid BACKUP_INTERVAL: %w", err)
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("BASE_URL must not be empty")
	}
	if cfg.Storage.DataDir == "" {
		return nil, errors.New("DATA_DIR must not be empty")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// parseDurationEnv reads an environment variable and parses it as time.Duration.
// If the variable is empty, it falls back to the provided default value.
func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be >= 0")
	}
	return d, nil
}
