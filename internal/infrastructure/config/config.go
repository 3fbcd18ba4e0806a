package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// PathEnv names the variable consulted when Load is called without a path.
const PathEnv = "CONSOLE_CONFIG"

type Config struct {
	APIBaseURL               string
	APITimeout               time.Duration
	ServerHost               string
	ServerPort               string
	LogLevel                 string
	PortfolioRefreshInterval time.Duration
	AlertSchedule            string
	NotificationLimit        int
	CORSAllowedOrigins       []string
	DisplayCurrency          string
}

// fileConfig is the on-disk TOML layout. Durations are written as Go
// duration strings ("30s", "5m").
type fileConfig struct {
	API struct {
		BaseURL string `toml:"base_url"`
		Timeout string `toml:"timeout"`
	} `toml:"api"`
	Server struct {
		Host               string   `toml:"host"`
		Port               int      `toml:"port"`
		CORSAllowedOrigins []string `toml:"cors_allowed_origins"`
	} `toml:"server"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
	Portfolio struct {
		RefreshInterval string `toml:"refresh_interval"`
	} `toml:"portfolio"`
	Alerts struct {
		Schedule string `toml:"schedule"`
	} `toml:"alerts"`
	Notifications struct {
		Limit int `toml:"limit"`
	} `toml:"notifications"`
	Display struct {
		Currency string `toml:"currency"`
	} `toml:"display"`
}

func defaults() fileConfig {
	var fc fileConfig
	fc.API.BaseURL = "http://localhost:8080/api"
	fc.API.Timeout = "0s"
	fc.Server.Host = "localhost"
	fc.Server.Port = 3000
	fc.Server.CORSAllowedOrigins = []string{"http://localhost:5173"}
	fc.Log.Level = "info"
	fc.Portfolio.RefreshInterval = "0s"
	fc.Notifications.Limit = 50
	fc.Display.Currency = money.USD
	return fc
}

// Load builds the configuration from defaults, then the optional TOML file,
// then a .env file in the working directory, then the environment. Later
// layers win.
func Load(path string) (*Config, error) {
	fc := defaults()

	if path == "" {
		path = os.Getenv(PathEnv)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	timeout, err := parseDuration("API_TIMEOUT", fc.API.Timeout)
	if err != nil {
		return nil, err
	}
	refresh, err := parseDuration("PORTFOLIO_REFRESH_INTERVAL", fc.Portfolio.RefreshInterval)
	if err != nil {
		return nil, err
	}

	limit, err := strconv.Atoi(getEnvOrDefault("NOTIFICATION_LIMIT", strconv.Itoa(fc.Notifications.Limit)))
	if err != nil {
		return nil, fmt.Errorf("invalid NOTIFICATION_LIMIT: %w", err)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("invalid NOTIFICATION_LIMIT: must be positive, got %d", limit)
	}

	baseURL := strings.TrimRight(getEnvOrDefault("API_BASE_URL", fc.API.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL must not be empty")
	}

	currency := strings.ToUpper(getEnvOrDefault("DISPLAY_CURRENCY", fc.Display.Currency))
	if money.GetCurrency(currency) == nil {
		return nil, fmt.Errorf("invalid DISPLAY_CURRENCY: unknown currency %q", currency)
	}

	origins := fc.Server.CORSAllowedOrigins
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		origins = splitList(raw)
	}

	return &Config{
		APIBaseURL:               baseURL,
		APITimeout:               timeout,
		ServerHost:               getEnvOrDefault("SERVER_HOST", fc.Server.Host),
		ServerPort:               getEnvOrDefault("SERVER_PORT", strconv.Itoa(fc.Server.Port)),
		LogLevel:                 getEnvOrDefault("LOG_LEVEL", fc.Log.Level),
		PortfolioRefreshInterval: refresh,
		AlertSchedule:            strings.TrimSpace(getEnvOrDefault("ALERT_SCHEDULE", fc.Alerts.Schedule)),
		NotificationLimit:        limit,
		CORSAllowedOrigins:       origins,
		DisplayCurrency:          currency,
	}, nil
}

func parseDuration(key, fallback string) (time.Duration, error) {
	raw := getEnvOrDefault(key, fallback)
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", key)
	}
	return d, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
