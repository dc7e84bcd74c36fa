package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	PGURL         string
	MarketDataURL string
	Port          string
}

// Load reads configuration from the environment, with a .env file as a
// development convenience (missing .env is not an error).
func Load() (*Config, error) {
	_ = godotenv.Load()

	pgURL := os.Getenv("PG_URL")
	if pgURL == "" {
		return nil, fmt.Errorf("PG_URL environment variable is required")
	}

	mdURL := os.Getenv("MARKET_DATA_URL")
	if mdURL == "" {
		return nil, fmt.Errorf("MARKET_DATA_URL environment variable is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		PGURL:         pgURL,
		MarketDataURL: mdURL,
		Port:          port,
	}, nil
}
