package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up by the CLI
const DefaultPath = "productapi.yml"

const (
	envDatabaseURL = "PRODUCTAPI_DATABASE_URL"
	envListenAddr  = "PRODUCTAPI_LISTEN_ADDR"
	envLogLevel    = "PRODUCTAPI_LOG_LEVEL"
)

type Config struct {
	DatabaseURL     string        `yaml:"database_url"`
	ListenAddr      string        `yaml:"listen_addr"`
	LogLevel        string        `yaml:"log_level"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		DatabaseURL:     "sqlite://./products.db",
		ListenAddr:      ":3000",
		LogLevel:        "info",
		MaxOpenConns:    1,
		ShutdownTimeout: 10 * time.Second,
	}
}

// LoadConfig reads configPath over the defaults and applies environment
// overrides. A missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		cfg.DatabaseURL = resolveSQLitePath(cfg.DatabaseURL, filepath.Dir(configPath))
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if v, ok := os.LookupEnv(envDatabaseURL); ok {
		cfg.DatabaseURL = v
	}
	if v, ok := os.LookupEnv(envListenAddr); ok {
		cfg.ListenAddr = v
	}
	if v, ok := os.LookupEnv(envLogLevel); ok {
		cfg.LogLevel = v
	}

	return cfg, nil
}

// resolveSQLitePath makes a relative sqlite file path relative to dir
func resolveSQLitePath(databaseURL, dir string) string {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return databaseURL
	}

	prefix := ""
	path := databaseURL
	if strings.HasPrefix(databaseURL, "sqlite://") {
		prefix = "sqlite://"
		path = strings.TrimPrefix(databaseURL, prefix)
	}
	if path == "" || path == ":memory:" || strings.HasPrefix(path, "file:") || filepath.IsAbs(path) {
		return databaseURL
	}
	return prefix + filepath.Join(dir, path)
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("database_url is required")
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr is required")
	}
	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max_open_conns must be positive")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}
