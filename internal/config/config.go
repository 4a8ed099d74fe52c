package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultCountry = "gb"
	DefaultBaseURL = "https://api.adzuna.com"
	DefaultTimeout = 30 * time.Second
	DefaultZoom    = 8
	DefaultPort    = "8080"
)

// Config holds everything the server needs at start-up.
// Credentials used to be compiled-in constants; now they come from the environment.
type Config struct {
	AdzunaAppID   string
	AdzunaAppKey  string
	AdzunaCountry string
	AdzunaBaseURL string
	AdzunaTimeout time.Duration

	MapboxToken string
	MapZoom     int

	Port        string
	CORSOrigins []string
}

var ErrMissingCredentials = errors.New("ADZUNA_APP_ID and ADZUNA_APP_KEY must be set")

// Load reads the config from the process environment.
// Call godotenv.Load before this if a .env file should be honoured.
func Load() (*Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from any env-like lookup function.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := &Config{
		AdzunaAppID:   get("ADZUNA_APP_ID", ""),
		AdzunaAppKey:  get("ADZUNA_APP_KEY", ""),
		AdzunaCountry: strings.ToLower(get("ADZUNA_COUNTRY", DefaultCountry)),
		AdzunaBaseURL: strings.TrimRight(get("ADZUNA_BASE_URL", DefaultBaseURL), "/"),
		AdzunaTimeout: DefaultTimeout,
		MapboxToken:   get("MAPBOX_TOKEN", ""),
		MapZoom:       DefaultZoom,
		Port:          get("PORT", DefaultPort),
	}

	if cfg.AdzunaAppID == "" || cfg.AdzunaAppKey == "" {
		return nil, ErrMissingCredentials
	}

	if raw := get("ADZUNA_TIMEOUT", ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid ADZUNA_TIMEOUT %q: %w", raw, err)
		}
		cfg.AdzunaTimeout = d
	}

	if raw := get("MAP_ZOOM", ""); raw != "" {
		zoom, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid MAP_ZOOM %q: %w", raw, err)
		}
		if zoom < 0 || zoom > 22 {
			return nil, fmt.Errorf("invalid MAP_ZOOM %d: must be between 0 and 22", zoom)
		}
		cfg.MapZoom = zoom
	}

	if raw := get("CORS_ORIGINS", ""); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
			}
		}
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Mask hides most of a secret for start-up logs.
func Mask(s string) string {
	if len(s) <= 8 {
		return "****"
	}
	return s[:4] + "…" + s[len(s)-4:]
}
