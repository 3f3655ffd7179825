package config

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Port         string
	Env          string
	WordlistPath string // empty means use the embedded list
	FetchTimeout time.Duration
}

func Load() Config {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		WordlistPath: getEnv("WORDLIST_PATH", ""),
		FetchTimeout: 10 * time.Second,
	}

	if raw := os.Getenv("FETCH_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			slog.Warn("invalid FETCH_TIMEOUT, using default", "value", raw, "default", cfg.FetchTimeout)
		} else {
			cfg.FetchTimeout = d
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
