package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel       LogLeveler     `mapstructure:"LOG_LEVEL"`
	HTTP           HTTP           `mapstructure:",squash"`
	Redis          Redis          `mapstructure:",squash"`
	Simulator      Simulator      `mapstructure:",squash"`
	Session        Session        `mapstructure:",squash"`
	Search         Search         `mapstructure:",squash"`
	RateLimit      RateLimit      `mapstructure:",squash"`
	RecentSearches RecentSearches `mapstructure:",squash"`
}

type HTTP struct {
	Port           int           `mapstructure:"HTTP_PORT"`
	Timeout        time.Duration `mapstructure:"HTTP_TIMEOUT"`
	AllowedOrigins []string      `mapstructure:"HTTP_ALLOWED_ORIGINS"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// Simulator tunes the fake remote systems behind every wizard step.
type Simulator struct {
	Delay        time.Duration `mapstructure:"SIMULATOR_DELAY"`
	PaymentDelay time.Duration `mapstructure:"SIMULATOR_PAYMENT_DELAY"`
	Timeout      time.Duration `mapstructure:"SIMULATOR_TIMEOUT"`
	FailureRate  float64       `mapstructure:"SIMULATOR_FAILURE_RATE"`
	MaxRetries   int           `mapstructure:"SIMULATOR_MAX_RETRIES"`
	Backoff      time.Duration `mapstructure:"SIMULATOR_BACKOFF"`
	// Seed fixes generated data, 0 seeds from the clock.
	Seed uint64 `mapstructure:"SIMULATOR_SEED"`
}

type Session struct {
	TTL         time.Duration `mapstructure:"SESSION_TTL"`
	LockTimeout time.Duration `mapstructure:"SESSION_LOCK_TIMEOUT"`
}

// Search controls how long generated listings are reused.
type Search struct {
	CacheTTL    time.Duration `mapstructure:"SEARCH_CACHE_TTL"`
	LockTimeout time.Duration `mapstructure:"SEARCH_LOCK_TIMEOUT"`
}

type RateLimit struct {
	RPS int `mapstructure:"RATE_LIMIT_RPS"`
}

type RecentSearches struct {
	Capacity int           `mapstructure:"RECENT_SEARCHES_CAPACITY"`
	TTL      time.Duration `mapstructure:"RECENT_SEARCHES_TTL"`
}
