// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Timeouts  TimeoutConfig
	Providers ProviderConfig
	Proxy     ProxyConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
	App       AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

// TimeoutConfig holds timeout settings for fare search operations.
type TimeoutConfig struct {
	GlobalSearch time.Duration `env:"TIMEOUT_GLOBAL_SEARCH" envDefault:"15s"`
	PerProvider  time.Duration `env:"TIMEOUT_PER_PROVIDER" envDefault:"10s"`
}

// ProviderConfig holds the airline quote-API endpoints.
type ProviderConfig struct {
	VietJetURL    string `env:"PROVIDER_VIETJET_URL" envDefault:"https://thuhongtour.com/vj/check-ve-v2"`
	VietnamAirURL string `env:"PROVIDER_VIETNAMAIR_URL" envDefault:"https://thuhongtour.com/vna/check-ve-v2"`
}

// ProxyConfig holds the ticket-delivery proxy endpoints.
type ProxyConfig struct {
	EmailURL  string `env:"PROXY_EMAIL_URL" envDefault:"https://thuhongtour.com/proxy-gas"`
	ImagesURL string `env:"PROXY_IMAGES_URL" envDefault:"https://thuhongtour.com/proxy-gas-img"`
}

// RedisConfig holds the profile store connection settings. Redis is optional;
// with REDIS_ENABLED=false the service runs on the in-memory store.
type RedisConfig struct {
	Enabled  bool   `env:"REDIS_ENABLED" envDefault:"false"`
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// RateLimitConfig bounds outbound calls to the quote APIs. The per-provider
// fields override the shared rate for one upstream; zero means inherit.
type RateLimitConfig struct {
	RequestsPerSecond float64 `env:"RATE_LIMIT_RPS" envDefault:"10"`
	BurstSize         int     `env:"RATE_LIMIT_BURST" envDefault:"20"`

	VietJetRPS    float64 `env:"RATE_LIMIT_VIETJET_RPS" envDefault:"0"`
	VietnamAirRPS float64 `env:"RATE_LIMIT_VIETNAMAIR_RPS" envDefault:"0"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional, won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Timeouts.GlobalSearch <= 0 {
		return fmt.Errorf("TIMEOUT_GLOBAL_SEARCH must be positive")
	}
	if cfg.Timeouts.PerProvider <= 0 {
		return fmt.Errorf("TIMEOUT_PER_PROVIDER must be positive")
	}
	if cfg.Timeouts.PerProvider >= cfg.Timeouts.GlobalSearch {
		return fmt.Errorf("TIMEOUT_PER_PROVIDER (%s) should be less than TIMEOUT_GLOBAL_SEARCH (%s)",
			cfg.Timeouts.PerProvider, cfg.Timeouts.GlobalSearch)
	}

	if cfg.Providers.VietJetURL == "" {
		return fmt.Errorf("PROVIDER_VIETJET_URL must not be empty")
	}
	if cfg.Providers.VietnamAirURL == "" {
		return fmt.Errorf("PROVIDER_VIETNAMAIR_URL must not be empty")
	}
	if cfg.Proxy.EmailURL == "" {
		return fmt.Errorf("PROXY_EMAIL_URL must not be empty")
	}
	if cfg.Proxy.ImagesURL == "" {
		return fmt.Errorf("PROXY_IMAGES_URL must not be empty")
	}

	if cfg.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive")
	}
	if cfg.RateLimit.BurstSize < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1")
	}
	if cfg.RateLimit.VietJetRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_VIETJET_RPS must not be negative")
	}
	if cfg.RateLimit.VietnamAirRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_VIETNAMAIR_RPS must not be negative")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}
