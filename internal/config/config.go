// Package config provides application configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// StoreDriver selects the journey store backend.
type StoreDriver string

const (
	StoreDriverMemory   StoreDriver = "memory"
	StoreDriverPostgres StoreDriver = "postgres"
	StoreDriverSQLite   StoreDriver = "sqlite"
)

// LogFormat selects how log lines are rendered.
type LogFormat string

const (
	LogFormatJSON   LogFormat = "json"
	LogFormatPretty LogFormat = "pretty"
)

// Config holds all environment-based configuration.
type Config struct {
	// Port is the HTTP port to listen on.
	// Env: PORT (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// StoreDriver is one of memory, postgres or sqlite.
	// Env: STORE_DRIVER (default: memory)
	StoreDriver StoreDriver `envconfig:"STORE_DRIVER" default:"memory"`

	// PostgresURL is the DSN used when StoreDriver is postgres.
	// Env: POSTGRES_URL
	PostgresURL string `envconfig:"POSTGRES_URL"`

	// SQLitePath is the database file used when StoreDriver is sqlite.
	// Env: SQLITE_PATH (default: journeys.db)
	SQLitePath string `envconfig:"SQLITE_PATH" default:"journeys.db"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: info)
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFormat is json or pretty.
	// Env: LOG_FORMAT (default: json)
	LogFormat LogFormat `envconfig:"LOG_FORMAT" default:"json"`

	// GinMode is passed to gin.SetMode.
	// Env: GIN_MODE (default: release)
	GinMode string `envconfig:"GIN_MODE" default:"release"`

	// CORSAllowedOrigins is a comma-separated list, "*" allows any origin.
	// Env: CORS_ALLOWED_ORIGINS (default: *)
	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// LoadFromEnv reads Config from the environment without a prefix.
func LoadFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StoreDriver {
	case StoreDriverMemory, StoreDriverSQLite:
	case StoreDriverPostgres:
		if c.PostgresURL == "" {
			return fmt.Errorf("POSTGRES_URL is required when STORE_DRIVER=%s", c.StoreDriver)
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER: %s", c.StoreDriver)
	}

	switch c.LogFormat {
	case LogFormatJSON, LogFormatPretty:
	default:
		return fmt.Errorf("unsupported LOG_FORMAT: %s", c.LogFormat)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT: %d", c.Port)
	}

	for _, origin := range c.AllowedOrigins() {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("invalid CORS_ALLOWED_ORIGINS entry: %s", origin)
		}
	}
	return nil
}

// UsesSQL reports whether journeys are kept in a gorm-backed database.
func (c Config) UsesSQL() bool {
	return c.StoreDriver == StoreDriverPostgres || c.StoreDriver == StoreDriverSQLite
}

// AllowedOrigins splits CORSAllowedOrigins, dropping blanks.
func (c Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
