package api

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type TestConfig struct {
	// BaseURL targets a running server; when empty the suites start their own.
	BaseURL        string        `envconfig:"API_BASE_URL"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	LogRequests    bool          `envconfig:"LOG_REQUESTS" default:"false"`
	LogResponses   bool          `envconfig:"LOG_RESPONSES" default:"false"`
}

// LoadTestConfig loads configuration from environment variables and an optional .env file.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	var cfg TestConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process test env: %w", err)
	}
	return &cfg, nil
}

// Remote reports whether the suite targets an already running server.
func (c *TestConfig) Remote() bool {
	return c.BaseURL != ""
}

func loadEnvFile() {
	envPaths := []string{
		"../../.env", // From test/api/suites directory
		"../.env",
	}

	for _, path := range envPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		absPath, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		if err := godotenv.Load(absPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", absPath, err)
		}
		return
	}
}
