package config

import (
	"errors"
	"os"
)

// Config holds environment-driven configuration.
type Config struct {
	Noko struct {
		AccessToken string
		BaseURL     string // default: https://api.nokotime.com/v2
	}
	MySQL struct {
		DSN string // e.g., user:pass@tcp(host:3306)/dbname?parseTime=true&multiStatements=true
	}
	Sync struct {
		Timezone string // e.g., UTC (default), Europe/Berlin
	}
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config

	cfg.Noko.AccessToken = os.Getenv("NOKO_ACCESS_TOKEN")
	if cfg.Noko.AccessToken == "" {
		return cfg, errors.New("NOKO_ACCESS_TOKEN is required")
	}
	cfg.Noko.BaseURL = os.Getenv("NOKO_BASE_URL")

	cfg.MySQL.DSN = os.Getenv("MYSQL_DSN")

	cfg.Sync.Timezone = os.Getenv("SYNC_TZ")
	if cfg.Sync.Timezone == "" {
		cfg.Sync.Timezone = "UTC"
	}

	return cfg, nil
}
