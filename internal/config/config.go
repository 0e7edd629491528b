package config

import (
	"os"
	"strconv"
	"time"

	"clientlogin/internal/clientlogin"
)

// Config contains runtime configuration for the glogin CLI.
type Config struct {
	// Endpoint overrides the exchange URL, mainly to point at local fakes.
	Endpoint string
	// Source names the calling application to the endpoint.
	Source string
	// Timeout bounds the whole HTTP exchange.
	Timeout time.Duration
}

// Load reads configuration from environment variables, falling back to the
// protocol defaults.
func Load() Config {
	return Config{
		Endpoint: getEnv("CLIENTLOGIN_ENDPOINT", clientlogin.Endpoint),
		Source:   getEnv("CLIENTLOGIN_SOURCE", clientlogin.DefaultSource),
		Timeout:  getEnvDuration("CLIENTLOGIN_TIMEOUT", 30*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if dur, err := time.ParseDuration(value); err == nil {
			return dur
		}

		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}
