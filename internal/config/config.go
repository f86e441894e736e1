package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
)

// Blob store backends.
const (
	BlobStoreDisk     = "disk"
	BlobStoreMemory   = "memory"
	BlobStoreRedis    = "redis"
	BlobStorePostgres = "postgres"
)

const (
	DefaultPort                 = 9000
	DefaultRestSeconds          = 90
	DefaultBlobCacheSizeMB      = 32
	DefaultWriteRateLimitPerMin = 120
)

type Config struct {
	Environment string
	Host        string
	Port        int
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// storage
	BlobStore         string `toml:"blob_store"`
	BlobStoreDiskPath string `toml:"blob_store_disk_path"`
	BlobCacheEnabled  bool   `toml:"blob_cache_enabled"`
	BlobCacheSizeMB   int    `toml:"blob_cache_size_mb"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// workout
	DefaultRestSeconds   int    `toml:"default_rest_seconds"`
	DefaultUserID        string `toml:"default_user_id"`
	WriteRateLimitPerMin int    `toml:"write_rate_limit_per_min"`
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
	return cfg, nil
}

// Load decodes the TOML file at path and returns the config of the given env,
// with defaults applied and validated.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}
	return fromToml(&t, env)
}

// Parse is Load for an in-memory TOML document.
func Parse(env, data string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(data, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(&t, env)
}

func fromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults(env)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid [%s] config: %w", env, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults(env string) {
	if c.Environment == "" {
		c.Environment = strings.ToLower(env)
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.BlobStore == "" {
		c.BlobStore = BlobStoreDisk
	}
	if c.BlobStoreDiskPath == "" {
		c.BlobStoreDiskPath = "./data"
	}
	if c.BlobCacheSizeMB == 0 {
		c.BlobCacheSizeMB = DefaultBlobCacheSizeMB
	}
	if c.DefaultRestSeconds == 0 {
		c.DefaultRestSeconds = DefaultRestSeconds
	}
	if c.WriteRateLimitPerMin == 0 {
		c.WriteRateLimitPerMin = DefaultWriteRateLimitPerMin
	}
}

func (c *Config) Validate() error {
	var err error
	if c.Port < 0 || c.Port > 65535 {
		err = multierr.Append(err, fmt.Errorf("port out of range: %d", c.Port))
	}
	switch c.BlobStore {
	case BlobStoreDisk, BlobStoreMemory:
	case BlobStoreRedis:
		if c.RedisHost == "" || c.RedisPort == "" {
			err = multierr.Append(err, errors.New("redis blob store needs redis_host and redis_port"))
		}
	case BlobStorePostgres:
		if c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDBName == "" {
			err = multierr.Append(err, errors.New("postgres blob store needs postgres_host, postgres_port and postgres_db_name"))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("unknown blob_store: %q", c.BlobStore))
	}
	if c.DefaultRestSeconds < 0 {
		err = multierr.Append(err, fmt.Errorf("negative default_rest_seconds: %d", c.DefaultRestSeconds))
	}
	if c.BlobCacheSizeMB < 0 {
		err = multierr.Append(err, fmt.Errorf("negative blob_cache_size_mb: %d", c.BlobCacheSizeMB))
	}
	return err
}
