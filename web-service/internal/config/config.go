package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is injected at startup; the upstream API address is never global state.
type Config struct {
	APIBaseURL string
	Addr       string

	// Default search origin for the homepage list.
	Lng         float64
	Lat         float64
	MaxDistance float64
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:  os.Getenv("API_BASE_URL"),
		Addr:        os.Getenv("WEB_ADDR"),
		Lng:         floatEnv("SEARCH_LNG", 127.2635),
		Lat:         floatEnv("SEARCH_LAT", 37.0092),
		MaxDistance: floatEnv("SEARCH_MAX_DISTANCE", 200000),
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:3000"
	}
	if cfg.Addr == "" {
		cfg.Addr = "0.0.0.0:8080"
	}

	return cfg, nil
}

func floatEnv(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return value
}
