// Package config loads server configuration from the environment, with an
// optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all server settings.
type Config struct {
	Addr        string
	DBPath      string
	MaxPhotoMB  int64
	Environment string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Addr:        getEnv("OGLED_ADDR", ":8080"),
		DBPath:      getEnv("OGLED_DB", "ogled.sqlite3"),
		Environment: getEnv("OGLED_ENV", "development"),
	}

	maxPhoto := getEnv("OGLED_MAX_PHOTO_MB", "10")
	mb, err := strconv.ParseInt(maxPhoto, 10, 64)
	if err != nil || mb <= 0 {
		return nil, fmt.Errorf("invalid OGLED_MAX_PHOTO_MB value %q", maxPhoto)
	}
	cfg.MaxPhotoMB = mb

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
