package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Telegram (demo consumer)
	TelegramToken string

	// Primary backend
	BackendBaseURL string
	BackendToken   string
	BackendUserID  string

	// Third-party search provider
	SearchAPIBaseURL string
	SearchAPIKey     string
	SearchAPIHost    string

	// Data layer
	HTTPTimeout       time.Duration
	CacheTTL          time.Duration
	RateLimitInterval time.Duration

	// Local mirror: memory, redis or postgres
	MirrorBackend string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	PostgresDSN   string

	// Logging
	LogLevel string
}

func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		BackendBaseURL:    "http://localhost:5000/api",
		SearchAPIBaseURL:  "https://jsearch.p.rapidapi.com",
		SearchAPIHost:     "jsearch.p.rapidapi.com",
		HTTPTimeout:       30 * time.Second,
		CacheTTL:          5 * time.Minute,
		RateLimitInterval: time.Second,
		MirrorBackend:     "memory",
		RedisAddr:         "localhost:6379",
		RedisDB:           0,
		LogLevel:          "info",
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")

	if baseURL := os.Getenv("BACKEND_BASE_URL"); baseURL != "" {
		cfg.BackendBaseURL = baseURL
	}

	cfg.BackendToken = os.Getenv("BACKEND_TOKEN")
	cfg.BackendUserID = os.Getenv("BACKEND_USER_ID")

	if baseURL := os.Getenv("SEARCH_API_BASE_URL"); baseURL != "" {
		cfg.SearchAPIBaseURL = baseURL
	}

	cfg.SearchAPIKey = os.Getenv("SEARCH_API_KEY")

	if host := os.Getenv("SEARCH_API_HOST"); host != "" {
		cfg.SearchAPIHost = host
	}

	if timeout := os.Getenv("HTTP_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
		}
		cfg.HTTPTimeout = d
	}

	if ttl := os.Getenv("CACHE_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
		}
		cfg.CacheTTL = d
	}

	if interval := os.Getenv("RATE_LIMIT_INTERVAL"); interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_INTERVAL: %w", err)
		}
		cfg.RateLimitInterval = d
	}

	if backend := os.Getenv("MIRROR_BACKEND"); backend != "" {
		cfg.MirrorBackend = backend
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.RedisAddr = addr
	}

	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		db, err := strconv.Atoi(redisDB)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.RedisDB = db
	}

	cfg.PostgresDSN = os.Getenv("POSTGRES_DSN")

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("telegram token is empty")
	}

	if c.BackendBaseURL == "" {
		return fmt.Errorf("backend base URL is empty")
	}

	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache TTL must be positive: %v", c.CacheTTL)
	}

	if c.RateLimitInterval <= 0 {
		return fmt.Errorf("rate limit interval must be positive: %v", c.RateLimitInterval)
	}

	switch c.MirrorBackend {
	case "memory":
	case "redis":
		if c.RedisAddr == "" {
			return fmt.Errorf("redis address is required for the redis mirror")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("postgres DSN is required for the postgres mirror")
		}
	default:
		return fmt.Errorf("invalid mirror backend: %s", c.MirrorBackend)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}
