package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sadopc/visionboard/internal/store"
)

type Config struct {
	DBPath   string
	LogPath  string
	LogLevel string
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

func defaults() (Config, error) {
	dbPath, err := store.DefaultDBPath()
	if err != nil {
		return Config{}, fmt.Errorf("locate config dir: %w", err)
	}
	return Config{
		DBPath:   dbPath,
		LogPath:  filepath.Join(filepath.Dir(dbPath), "visionboard.log"),
		LogLevel: "info",
	}, nil
}

// Load builds the configuration from defaults, an optional .env file in the
// working directory, and VISIONBOARD_* environment variables, in that order.
// Callers apply their own overrides and then call Validate.
func Load() (Config, error) {
	return loadFrom(".env")
}

func loadFrom(envFile string) (Config, error) {
	cfg, err := defaults()
	if err != nil {
		return Config{}, err
	}

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("read %s: %w", envFile, err)
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("VISIONBOARD_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("VISIONBOARD_LOG_FILE"); v != "" {
		cfg.LogPath = v
	}
	if v := os.Getenv("VISIONBOARD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

func (c Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("database path must not be empty")
	}
	if c.LogPath == "" {
		return errors.New("log file path must not be empty")
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("log level %q must be one of debug, info, warn, error", c.LogLevel)
	}
	return nil
}
