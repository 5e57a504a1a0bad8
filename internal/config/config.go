package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/zipcast/zipcast/internal/store"
)

type AppConfig struct {
	// Zip is the default postal code for every phase.
	Zip     string
	Country string

	// Timezone is the fixed local timezone used for "today" and for the
	// forecast request.
	Timezone string

	// UserAgent identifies this client to Nominatim, which requires one.
	UserAgent string

	// HTTPTimeout is the fixed per-call deadline on outbound requests.
	HTTPTimeout time.Duration

	DB store.Config

	// Serve mode.
	Port            string
	RefreshInterval time.Duration
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Zip = getenvDefault("WEATHER_ZIP", "64093")
	cfg.Country = getenvDefault("WEATHER_COUNTRY", "us")
	cfg.Timezone = getenvDefault("WEATHER_TIMEZONE", "America/Chicago")
	cfg.UserAgent = getenvDefault("WEATHER_USER_AGENT", "zipcast/1.0")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.DB = store.Config{
		Host:     getenvDefault("DB_HOST", "127.0.0.1"),
		Port:     getenvDefault("DB_PORT", "3306"),
		User:     getenvDefault("DB_USER", "root"),
		Password: os.Getenv("DB_PASS"),
		Database: getenvDefault("DB_NAME", "weather"),
	}

	cfg.Port = getenvDefault("PORT", "8080")

	// Serve mode refresh: default 15 minutes.
	refreshStr := getenvDefault("REFRESH_INTERVAL", "15m")
	refresh, err := time.ParseDuration(refreshStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = refresh

	return cfg, nil
}

// Location resolves the configured timezone.
func (c *AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid WEATHER_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
