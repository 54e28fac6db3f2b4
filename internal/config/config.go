package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config contains runtime settings for the MCP server
type Config struct {
	LogLevel string
	Host     string // default 0.0.0.0
	Port     string // default PORT env or 8080
	MCF      struct {
		BaseURL    string
		Timeout    time.Duration
		RatePerSec float64 // outbound requests per second against the public API
	} // MyCareersFuture upstream settings
	Widget struct {
		AssetsDir string // directory holding the built widget bundles
	}
}

// Load populates config from environment variables, reading a local .env
// file first when one exists
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		LogLevel: "info",
		Host:     "0.0.0.0",
		Port:     "8080",
	}
	cfg.MCF.BaseURL = "https://api.mycareersfuture.gov.sg"
	cfg.MCF.Timeout = 12 * time.Second
	cfg.MCF.RatePerSec = 5
	cfg.Widget.AssetsDir = "assets"

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("MCP_HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	if v := os.Getenv("MCF_BASE_URL"); v != "" {
		cfg.MCF.BaseURL = v
	}

	if v := os.Getenv("MCF_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return cfg, fmt.Errorf("MCF_TIMEOUT_SECONDS must be a positive integer, got %q", v)
		}
		cfg.MCF.Timeout = time.Duration(secs) * time.Second
	}

	if v := os.Getenv("MCF_RATE_PER_SEC"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil || rate < 0 {
			return cfg, fmt.Errorf("MCF_RATE_PER_SEC must be a non-negative number, got %q", v)
		}
		cfg.MCF.RatePerSec = rate
	}

	if v := os.Getenv("WIDGET_ASSETS_DIR"); v != "" {
		cfg.Widget.AssetsDir = v
	}

	return cfg, nil
}
