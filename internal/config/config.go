package config

import (
	"fmt"
	"strings"
	"time"

	"route-planner-service/internal/services"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
// Every key is read from the environment by its upper-case name,
// e.g. SERVER_PORT or GEOCODE_CACHE_TTL.
type Config struct {
	ServerPort       int           `mapstructure:"server_port"`
	LogLevel         string        `mapstructure:"log_level"`
	LogFormat        string        `mapstructure:"log_format"`
	GeocoderProvider string        `mapstructure:"geocoder_provider"`
	KakaoRestAPIKey  string        `mapstructure:"kakao_rest_api_key"`
	ORSAPIKey        string        `mapstructure:"ors_api_key"`
	ORSCountry       string        `mapstructure:"ors_country"`
	GeocodeCache     string        `mapstructure:"geocode_cache"`
	GeocodeCacheTTL  time.Duration `mapstructure:"geocode_cache_ttl"`
	GeocodeRateLimit float64       `mapstructure:"geocode_rate_limit"`
	DBPath           string        `mapstructure:"db_path"`
	DatabaseURL      string        `mapstructure:"database_url"`
	RedisAddr        string        `mapstructure:"redis_addr"`
	SeedPath         string        `mapstructure:"seed_path"`
	DefaultAlgorithm string        `mapstructure:"default_algorithm"`
}

// Load reads an optional .env file, then defaults and environment variables.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("server_port", 8080)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("geocoder_provider", "none")
	v.SetDefault("kakao_rest_api_key", "")
	v.SetDefault("ors_api_key", "")
	v.SetDefault("ors_country", "")
	v.SetDefault("geocode_cache", "sqlite")
	v.SetDefault("geocode_cache_ttl", 24*time.Hour)
	v.SetDefault("geocode_rate_limit", 10.0)
	v.SetDefault("db_path", "")
	v.SetDefault("database_url", "")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("seed_path", "")
	v.SetDefault("default_algorithm", "nearest")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.GeocoderProvider = strings.ToLower(strings.TrimSpace(cfg.GeocoderProvider))
	cfg.GeocodeCache = strings.ToLower(strings.TrimSpace(cfg.GeocodeCache))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		errs = append(errs, fmt.Sprintf("SERVER_PORT must be 1-65535, got %d", c.ServerPort))
	}

	switch c.LogFormat {
	case "json", "console":
	default:
		errs = append(errs, fmt.Sprintf("LOG_FORMAT must be json or console, got %q", c.LogFormat))
	}

	switch c.GeocoderProvider {
	case "none":
	case "kakao":
		if strings.TrimSpace(c.KakaoRestAPIKey) == "" {
			errs = append(errs, "KAKAO_REST_API_KEY is required when GEOCODER_PROVIDER=kakao")
		}
	case "ors":
		if strings.TrimSpace(c.ORSAPIKey) == "" {
			errs = append(errs, "ORS_API_KEY is required when GEOCODER_PROVIDER=ors")
		}
	default:
		errs = append(errs, fmt.Sprintf("GEOCODER_PROVIDER must be none, kakao, or ors, got %q", c.GeocoderProvider))
	}

	switch c.GeocodeCache {
	case "none", "sqlite":
	case "postgres":
		if strings.TrimSpace(c.DatabaseURL) == "" {
			errs = append(errs, "DATABASE_URL is required when GEOCODE_CACHE=postgres")
		}
	case "redis":
		if strings.TrimSpace(c.RedisAddr) == "" {
			errs = append(errs, "REDIS_ADDR is required when GEOCODE_CACHE=redis")
		}
	default:
		errs = append(errs, fmt.Sprintf("GEOCODE_CACHE must be none, sqlite, postgres, or redis, got %q", c.GeocodeCache))
	}

	if c.GeocodeCacheTTL < 0 {
		errs = append(errs, "GEOCODE_CACHE_TTL must not be negative")
	}

	if c.GeocodeRateLimit < 0 {
		errs = append(errs, "GEOCODE_RATE_LIMIT must not be negative")
	}

	if _, err := services.ParseAlgorithm(c.DefaultAlgorithm, services.AlgorithmNearestNeighbor); err != nil {
		errs = append(errs, fmt.Sprintf("DEFAULT_ALGORITHM: %v", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.ServerPort)
}
