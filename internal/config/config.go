package config

import (
	"os"
	"strconv"
)

// Config holds the service configuration, loaded from the environment
type Config struct {
	Port       string
	JWTSecret  string // Empty disables authentication
	MaxHistory int    // Walks retained before oldest-eviction
	RateLimit  int    // Requests per minute per client IP
}

// Load reads configuration from environment variables with defaults
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	jwtSecret := os.Getenv("JWT_SECRET")

	maxHistory := intEnv("MAX_HISTORY", 100)
	rateLimit := intEnv("RATE_LIMIT", 300)

	return &Config{
		Port:       port,
		JWTSecret:  jwtSecret,
		MaxHistory: maxHistory,
		RateLimit:  rateLimit,
	}
}

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
