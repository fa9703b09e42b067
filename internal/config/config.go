package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	DB         DBConfig
	Redis      RedisConfig
	Auth       AuthConfig
	Ledger     LedgerConfig
	Commerce   CommerceConfig
	Sync       SyncConfig
	Validation ValidationConfig
	Log        LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// RedisConfig holds the transporter-cache settings. An empty Addr disables
// the cache and lookups go straight to the database.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// AuthConfig holds the shared integration secret for inbound requests.
type AuthConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// LedgerConfig holds Ginesys ERP API settings.
type LedgerConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CommerceConfig holds WooCommerce REST API settings.
type CommerceConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	ConsumerKey    string        `mapstructure:"consumer_key"`
	ConsumerSecret string        `mapstructure:"consumer_secret"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

// SyncConfig holds inventory sync worker settings.
type SyncConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	Concurrency  int           `mapstructure:"concurrency"`
}

// ValidationConfig holds engine behavior toggles.
type ValidationConfig struct {
	StrictDates bool `mapstructure:"strict_dates"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the OMSBRIDGE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("OMSBRIDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "omsbridge")
	v.SetDefault("db.password", "omsbridge_secret")
	v.SetDefault("db.name", "omsbridge_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Redis defaults (cache disabled unless addr is set)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "10m")

	// Auth defaults
	v.SetDefault("auth.secret", "change-me-in-production")
	v.SetDefault("auth.issuer", "omsbridge")

	// Ledger defaults
	v.SetDefault("ledger.base_url", "https://api.ginesys.com")
	v.SetDefault("ledger.token", "")
	v.SetDefault("ledger.timeout", "30s")

	// Commerce defaults
	v.SetDefault("commerce.base_url", "")
	v.SetDefault("commerce.consumer_key", "")
	v.SetDefault("commerce.consumer_secret", "")
	v.SetDefault("commerce.timeout", "30s")

	// Sync defaults
	v.SetDefault("sync.enabled", true)
	v.SetDefault("sync.poll_interval", "1h")
	v.SetDefault("sync.concurrency", 5)

	// Validation defaults
	v.SetDefault("validation.strict_dates", false)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "OMSBRIDGE_SERVER_PORT",
		"server.read_timeout":      "OMSBRIDGE_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "OMSBRIDGE_SERVER_WRITE_TIMEOUT",
		"server.environment":       "OMSBRIDGE_SERVER_ENVIRONMENT",
		"db.host":                  "OMSBRIDGE_DB_HOST",
		"db.port":                  "OMSBRIDGE_DB_PORT",
		"db.user":                  "OMSBRIDGE_DB_USER",
		"db.password":              "OMSBRIDGE_DB_PASSWORD",
		"db.name":                  "OMSBRIDGE_DB_NAME",
		"db.sslmode":               "OMSBRIDGE_DB_SSLMODE",
		"db.max_open":              "OMSBRIDGE_DB_MAX_OPEN",
		"db.max_idle":              "OMSBRIDGE_DB_MAX_IDLE",
		"redis.addr":               "OMSBRIDGE_REDIS_ADDR",
		"redis.password":           "OMSBRIDGE_REDIS_PASSWORD",
		"redis.db":                 "OMSBRIDGE_REDIS_DB",
		"redis.ttl":                "OMSBRIDGE_REDIS_TTL",
		"auth.secret":              "OMSBRIDGE_AUTH_SECRET",
		"auth.issuer":              "OMSBRIDGE_AUTH_ISSUER",
		"ledger.base_url":          "OMSBRIDGE_LEDGER_BASE_URL",
		"ledger.token":             "OMSBRIDGE_LEDGER_TOKEN",
		"ledger.timeout":           "OMSBRIDGE_LEDGER_TIMEOUT",
		"commerce.base_url":        "OMSBRIDGE_COMMERCE_BASE_URL",
		"commerce.consumer_key":    "OMSBRIDGE_COMMERCE_CONSUMER_KEY",
		"commerce.consumer_secret": "OMSBRIDGE_COMMERCE_CONSUMER_SECRET",
		"commerce.timeout":         "OMSBRIDGE_COMMERCE_TIMEOUT",
		"sync.enabled":             "OMSBRIDGE_SYNC_ENABLED",
		"sync.poll_interval":       "OMSBRIDGE_SYNC_POLL_INTERVAL",
		"sync.concurrency":         "OMSBRIDGE_SYNC_CONCURRENCY",
		"validation.strict_dates":  "OMSBRIDGE_VALIDATION_STRICT_DATES",
		"log.level":                "OMSBRIDGE_LOG_LEVEL",
		"log.format":               "OMSBRIDGE_LOG_FORMAT",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}
