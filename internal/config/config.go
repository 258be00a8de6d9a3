package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/i474232898/weather-widget/internal/weather"
)

type AppConfig struct {
	Port string `validate:"required,numeric"`

	// ClockInterval controls how often the date fields are refreshed.
	ClockInterval time.Duration `validate:"gt=0"`

	// DefaultCity is rendered at startup and used as the search fallback.
	// Empty means a random catalog city is used as fallback.
	DefaultCity string

	Locale   string `validate:"required,bcp47_language_tag"`
	Location *time.Location

	// Seed for the jitter source; 0 seeds from the clock.
	Seed int64

	// Render history retention (0 = unlimited).
	MaxHistory int `validate:"gte=0"`

	// Search rate limiting.
	SearchRPS   float64 `validate:"gt=0"`
	SearchBurst int     `validate:"gte=1"`
}

var validate = validator.New()

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")

	intervalStr := getenvDefault("CLOCK_INTERVAL", "60s")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CLOCK_INTERVAL: %w", err)
	}
	cfg.ClockInterval = interval

	cfg.DefaultCity = weather.DefaultCityKey
	if v, ok := os.LookupEnv("WIDGET_DEFAULT_CITY"); ok {
		cfg.DefaultCity = v
	}

	cfg.Locale = getenvDefault("WIDGET_LOCALE", "en-US")

	cfg.Location = time.Local
	if tz := os.Getenv("WIDGET_TIMEZONE"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid WIDGET_TIMEZONE: %w", err)
		}
		cfg.Location = loc
	}

	seedStr := getenvDefault("WIDGET_SEED", "0")
	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid WIDGET_SEED: %w", err)
	}
	cfg.Seed = seed

	maxHistory, err := getenvInt("WIDGET_MAX_HISTORY", 20)
	if err != nil {
		return nil, err
	}
	cfg.MaxHistory = maxHistory

	rps, err := strconv.ParseFloat(getenvDefault("SEARCH_RPS", "5"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SEARCH_RPS: %w", err)
	}
	cfg.SearchRPS = rps
	burst, err := getenvInt("SEARCH_BURST", 10)
	if err != nil {
		return nil, err
	}
	cfg.SearchBurst = burst

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
