package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	AppPort     int
	StorePath   string
	ProfilePath string
	LogLevel    string
	// PageURL is the base URL given to HTML extractors for resolving links.
	PageURL string
}

func Load() (*Config, error) {
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	return &Config{
		AppPort:     appPort,
		StorePath:   getEnv("STORE_PATH", "data/novelpub.db"),
		ProfilePath: getEnv("PROFILE_PATH", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		PageURL:     getEnv("PAGE_URL", "http://localhost/"),
	}, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
