package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the service settings, read from the environment and an
// optional .env file in the working directory.
type Config struct {
	Port           string        `mapstructure:"PORT"`
	DatabaseURL    string        `mapstructure:"DATABASE_URL"`
	RedisURL       string        `mapstructure:"REDIS_URL"`
	RouteCacheTTL  time.Duration `mapstructure:"ROUTE_CACHE_TTL"`
	SeedPath       string        `mapstructure:"SEED_PATH"`
	RateLimitRPS   float64       `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int           `mapstructure:"RATE_LIMIT_BURST"`
}

var defaults = map[string]any{
	"PORT":             "8080",
	"DATABASE_URL":     "",
	"REDIS_URL":        "",
	"ROUTE_CACHE_TTL":  "10m",
	"SEED_PATH":        "data/seeds/map.yaml",
	"RATE_LIMIT_RPS":   20.0,
	"RATE_LIMIT_BURST": 40,
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	return v
}

// Load reads configuration from path/.env and the environment. Environment
// variables win over the file. A missing .env file is not an error.
func Load(path string) (*Config, error) {
	v := newViper(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("load config: read .env: %w", err)
		}
		log.Println("No .env file found (using environment variables)")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg.Port = strings.TrimSpace(cfg.Port)
	if cfg.Port == "" {
		return nil, errors.New("load config: PORT must not be empty")
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return nil, fmt.Errorf("load config: rate limit must be positive, got rps=%v burst=%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.RouteCacheTTL < 0 {
		return nil, fmt.Errorf("load config: ROUTE_CACHE_TTL must not be negative, got %v", cfg.RouteCacheTTL)
	}

	return &cfg, nil
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	v := viper.New()
	v.AutomaticEnv()
	if value := strings.TrimSpace(v.GetString(key)); value != "" {
		return value
	}
	return fallback
}
