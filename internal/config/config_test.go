package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookupDefaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"ADZUNA_APP_ID":  "id",
		"ADZUNA_APP_KEY": "key",
	}))
	require.NoError(t, err)

	assert.Equal(t, "gb", cfg.AdzunaCountry)
	assert.Equal(t, DefaultBaseURL, cfg.AdzunaBaseURL)
	assert.Equal(t, 30*time.Second, cfg.AdzunaTimeout)
	assert.Equal(t, 8, cfg.MapZoom)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Empty(t, cfg.MapboxToken)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestFromLookupOverrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"ADZUNA_APP_ID":   "id",
		"ADZUNA_APP_KEY":  "key",
		"ADZUNA_COUNTRY":  "IT",
		"ADZUNA_BASE_URL": "http://localhost:9999/",
		"ADZUNA_TIMEOUT":  "5s",
		"MAPBOX_TOKEN":    "pk.token",
		"MAP_ZOOM":        "11",
		"PORT":            "3000",
		"CORS_ORIGINS":    "http://a.test, http://b.test,",
	}))
	require.NoError(t, err)

	assert.Equal(t, "it", cfg.AdzunaCountry)
	assert.Equal(t, "http://localhost:9999", cfg.AdzunaBaseURL)
	assert.Equal(t, 5*time.Second, cfg.AdzunaTimeout)
	assert.Equal(t, "pk.token", cfg.MapboxToken)
	assert.Equal(t, 11, cfg.MapZoom)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestFromLookupErrors(t *testing.T) {
	base := map[string]string{"ADZUNA_APP_ID": "id", "ADZUNA_APP_KEY": "key"}

	tests := []struct {
		name  string
		extra map[string]string
		drop  string
	}{
		{name: "missing app id", drop: "ADZUNA_APP_ID"},
		{name: "missing app key", drop: "ADZUNA_APP_KEY"},
		{name: "bad timeout", extra: map[string]string{"ADZUNA_TIMEOUT": "soon"}},
		{name: "bad zoom", extra: map[string]string{"MAP_ZOOM": "eight"}},
		{name: "zoom out of range", extra: map[string]string{"MAP_ZOOM": "30"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := map[string]string{}
			for k, v := range base {
				if k != tt.drop {
					env[k] = v
				}
			}
			for k, v := range tt.extra {
				env[k] = v
			}

			_, err := FromLookup(lookupFrom(env))
			require.Error(t, err)
			if tt.drop != "" {
				assert.ErrorIs(t, err, ErrMissingCredentials)
			}
		})
	}
}

func TestMask(t *testing.T) {
	assert.Equal(t, "****", Mask("short"))
	assert.Equal(t, "pk.e…wxyz", Mask("pk.eyJ1Ijoiabcdwxyz"))
}
