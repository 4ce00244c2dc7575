package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/physioroutines/internal/storage"

	"github.com/BurntSushi/toml"
)

type Config struct {
	// set from the selected env, not from the file
	Environment string `toml:"-"`

	Host string
	Port int
	// metrics are served on a separate listener
	MetricsHost string `toml:"metrics_host"`
	MetricsPort int    `toml:"metrics_port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// http api
	AllowedOrigins  []string `toml:"allowed_origins"`
	RateLimitPerMin int      `toml:"rate_limit_per_min"`

	// redis is optional, enables rate limiting and the redis storage driver
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// documents
	StorageDriver   string `toml:"storage_driver"`
	DocumentKey     string `toml:"document_key"`
	CatalogKey      string `toml:"catalog_key"`
	CatalogSeedPath string `toml:"catalog_seed_path"`

	// storage drivers
	FileRootPath string `toml:"file_root_path"`
	MemorySizeMB int    `toml:"memory_size_mb"`
	PostgresHost string `toml:"postgres_host"`
	PostgresPort string `toml:"postgres_port"`
	PostgresName string `toml:"postgres_name"`
	PostgresUser string `toml:"postgres_user"`
	SqlitePath   string `toml:"sqlite_path"`
	S3Bucket     string `toml:"s3_bucket"`
	S3Region     string `toml:"s3_region"`
	S3Endpoint   string `toml:"s3_endpoint"`
	S3PathStyle  bool   `toml:"s3_path_style"`
	S3Prefix     string `toml:"s3_prefix"`
}

func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

func (c *Config) Driver() storage.Driver {
	// validated in Load
	d, _ := storage.ParseDriver(c.StorageDriver)
	return d
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML config file and returns the section for env, with
// defaults applied.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing", env)
	}

	if strings.HasPrefix(strings.ToLower(env), "prod") {
		cfg.Environment = "production"
	} else {
		cfg.Environment = "development"
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() error {
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.MetricsPort == 0 {
		c.MetricsPort = 2112
	}
	if c.RateLimitPerMin == 0 {
		c.RateLimitPerMin = 60
	}
	if c.MemorySizeMB == 0 {
		c.MemorySizeMB = 5
	}
	if c.RedisHost != "" && c.RedisPort == "" {
		c.RedisPort = "6379"
	}

	driver, err := storage.ParseDriver(c.StorageDriver)
	if err != nil {
		return err
	}
	c.StorageDriver = string(driver)

	switch driver {
	case storage.DriverFile:
		if c.FileRootPath == "" {
			return errors.New("file_root_path required for the file storage driver")
		}
	case storage.DriverRedis:
		if !c.RedisEnabled() {
			return errors.New("redis_host required for the redis storage driver")
		}
	case storage.DriverPostgres:
		if c.PostgresHost == "" || c.PostgresName == "" {
			return errors.New("postgres_host and postgres_name required for the postgres storage driver")
		}
		if c.PostgresPort == "" {
			c.PostgresPort = "5432"
		}
	case storage.DriverSqlite:
		if c.SqlitePath == "" {
			return errors.New("sqlite_path required for the sqlite storage driver")
		}
	case storage.DriverS3:
		if c.S3Bucket == "" {
			return errors.New("s3_bucket required for the s3 storage driver")
		}
	}

	return nil
}
