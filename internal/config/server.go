package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Server defaults
const (
	DefaultHost         = "127.0.0.1"
	DefaultPort         = "8000"
	DefaultEnvironment  = "development"
	DefaultReadTimeout  = 15 * time.Second
	DefaultWriteTimeout = 15 * time.Second
	DefaultIdleTimeout  = 60 * time.Second
)

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
	Environment  string        `yaml:"environment"`
}

// DefaultServerConfig returns the built-in server settings
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:         DefaultHost,
		Port:         DefaultPort,
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
		IdleTimeout:  DefaultIdleTimeout,
		Environment:  DefaultEnvironment,
	}
}

// LoadServerConfig builds the server configuration.
// Precedence: environment variables > YAML file (when path is set) > defaults.
func LoadServerConfig(path string) (ServerConfig, error) {
	cfg := DefaultServerConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.Host = getEnvOrDefault("PLAYGROUND_HOST", cfg.Host)
	cfg.Port = getEnvOrDefault("PLAYGROUND_PORT", cfg.Port)
	cfg.Environment = getEnvOrDefault("PLAYGROUND_ENV", cfg.Environment)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the server settings
func (c ServerConfig) Validate() error {
	if err := ValidatePort(c.Port); err != nil {
		return err
	}
	for name, timeout := range map[string]time.Duration{
		"read":  c.ReadTimeout,
		"write": c.WriteTimeout,
		"idle":  c.IdleTimeout,
	} {
		if err := ValidateTimeout(timeout, name); err != nil {
			return err
		}
	}
	if c.Environment != "development" && c.Environment != "production" {
		return fmt.Errorf("environment must be development or production, got %q", c.Environment)
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}

// Address returns host:port
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
