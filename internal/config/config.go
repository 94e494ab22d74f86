package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	NutritionProviderPostgres = "postgres"
	NutritionProviderHTTP     = "http"
)

type Config struct {
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// storage
	Storage        string `toml:"storage"`
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	RedisHost      string `toml:"redis_host"`
	RedisPort      string `toml:"redis_port"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// calendar days (streaks, nutrition weeks) are evaluated in this zone
	Timezone string `toml:"timezone"`

	NutritionProvider        string `toml:"nutrition_provider"`
	NutritionAPIURL          string `toml:"nutrition_api_url"`
	NutritionCacheTTLSeconds int    `toml:"nutrition_cache_ttl_seconds"`
	StreakCacheTTLSeconds    int    `toml:"streak_cache_ttl_seconds"`

	RateLimitAllowedPerMin int `toml:"rate_limit_allowed_per_min"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	cfg.Environment = strings.ToLower(env)
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env,
// with defaults applied and validated.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return parse(&t, env)
}

// Parse is Load for in-memory TOML content.
func Parse(env, content string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(content, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return parse(&t, env)
}

func parse(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", env, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Storage == "" {
		c.Storage = StoragePostgres
	}
	if c.NutritionProvider == "" {
		c.NutritionProvider = NutritionProviderPostgres
	}
	if c.Timezone == "" {
		c.Timezone = "UTC"
	}
	if c.NutritionCacheTTLSeconds <= 0 {
		c.NutritionCacheTTLSeconds = 300
	}
	if c.StreakCacheTTLSeconds <= 0 {
		c.StreakCacheTTLSeconds = 600
	}
	if c.RateLimitAllowedPerMin <= 0 {
		c.RateLimitAllowedPerMin = 60
	}
}

func (c *Config) validate() error {
	if c.Port <= 0 {
		return errors.New("port not set")
	}
	switch c.Storage {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("unknown storage: %s", c.Storage)
	}
	switch c.NutritionProvider {
	case NutritionProviderPostgres:
		if c.Storage != StoragePostgres {
			return errors.New("postgres nutrition provider requires postgres storage")
		}
	case NutritionProviderHTTP:
		if c.NutritionAPIURL == "" {
			return errors.New("nutrition_api_url not set")
		}
	default:
		return fmt.Errorf("unknown nutrition provider: %s", c.NutritionProvider)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	return nil
}

func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) StreakCacheTTL() time.Duration {
	return time.Duration(c.StreakCacheTTLSeconds) * time.Second
}
