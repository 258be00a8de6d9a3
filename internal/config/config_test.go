package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "CLOCK_INTERVAL", "WIDGET_LOCALE", "WIDGET_TIMEZONE", "WIDGET_SEED", "WIDGET_MAX_HISTORY", "SEARCH_RPS", "SEARCH_BURST"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Minute, cfg.ClockInterval)
	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, 20, cfg.MaxHistory)
	assert.Equal(t, 5.0, cfg.SearchRPS)
	assert.Equal(t, 10, cfg.SearchBurst)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CLOCK_INTERVAL", "30s")
	t.Setenv("WIDGET_DEFAULT_CITY", "")
	t.Setenv("WIDGET_LOCALE", "de-DE")
	t.Setenv("WIDGET_TIMEZONE", "UTC")
	t.Setenv("WIDGET_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.ClockInterval)
	assert.Equal(t, "", cfg.DefaultCity)
	assert.Equal(t, "de-DE", cfg.Locale)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"CLOCK_INTERVAL":     "soon",
		"WIDGET_TIMEZONE":    "Nowhere/Atlantis",
		"WIDGET_SEED":        "abc",
		"SEARCH_RPS":         "-1",
		"PORT":               "http",
		"WIDGET_MAX_HISTORY": "abc",
		"SEARCH_BURST":       "x",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
