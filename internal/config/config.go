package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Store drivers understood by CreateStore.
const (
	StoreDriverMemory = "memory"
	StoreDriverSQLite = "sqlite"
)

// Config holds all configuration options for the task manager service
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Store      StoreConfig      `yaml:"store"`
	Validation ValidationConfig `yaml:"validation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"TM_SERVER_ADDR"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"TM_SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"TM_SERVER_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"TM_SERVER_SHUTDOWN_TIMEOUT"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes" env:"TM_SERVER_MAX_BODY_BYTES"`
}

// StoreConfig selects the task store backend
type StoreConfig struct {
	Driver string `yaml:"driver" env:"TM_STORE_DRIVER"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	NameMaxLength        int `yaml:"name_max_length" env:"TM_VALIDATION_NAME_MAX"`
	DescriptionMaxLength int `yaml:"description_max_length" env:"TM_VALIDATION_DESCRIPTION_MAX"`
}

// LoggingConfig holds structured logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" env:"TM_LOG_LEVEL"`
	Format string `yaml:"format" env:"TM_LOG_FORMAT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    1 << 20,
		},
		Store: StoreConfig{
			Driver: StoreDriverMemory,
		},
		Validation: ValidationConfig{
			NameMaxLength:        100,
			DescriptionMaxLength: 500,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Server configuration
	if addr := os.Getenv("TM_SERVER_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if timeout := os.Getenv("TM_SERVER_READ_TIMEOUT"); timeout != "" {
		c.Server.ReadTimeout = ParseDurationWithFallback(timeout, c.Server.ReadTimeout)
	}
	if timeout := os.Getenv("TM_SERVER_WRITE_TIMEOUT"); timeout != "" {
		c.Server.WriteTimeout = ParseDurationWithFallback(timeout, c.Server.WriteTimeout)
	}
	if timeout := os.Getenv("TM_SERVER_SHUTDOWN_TIMEOUT"); timeout != "" {
		c.Server.ShutdownTimeout = ParseDurationWithFallback(timeout, c.Server.ShutdownTimeout)
	}
	if size := os.Getenv("TM_SERVER_MAX_BODY_BYTES"); size != "" {
		if n, err := strconv.ParseInt(size, 10, 64); err == nil {
			c.Server.MaxBodyBytes = n
		}
	}

	// Store configuration
	if driver := os.Getenv("TM_STORE_DRIVER"); driver != "" {
		c.Store.Driver = strings.ToLower(driver)
	}

	// Validation configuration
	if maxLen := os.Getenv("TM_VALIDATION_NAME_MAX"); maxLen != "" {
		c.Validation.NameMaxLength = ParseIntWithFallback(maxLen, c.Validation.NameMaxLength)
	}
	if maxLen := os.Getenv("TM_VALIDATION_DESCRIPTION_MAX"); maxLen != "" {
		c.Validation.DescriptionMaxLength = ParseIntWithFallback(maxLen, c.Validation.DescriptionMaxLength)
	}

	// Logging configuration
	if level := os.Getenv("TM_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("TM_LOG_FORMAT"); format != "" {
		c.Logging.Format = strings.ToLower(format)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate server configuration
	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "listen address cannot be empty"}
	}
	if c.Server.ReadTimeout <= 0 {
		return &ConfigError{Field: "server.read_timeout", Message: "read timeout must be positive"}
	}
	if c.Server.WriteTimeout <= 0 {
		return &ConfigError{Field: "server.write_timeout", Message: "write timeout must be positive"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}
	if c.Server.MaxBodyBytes <= 0 {
		return &ConfigError{Field: "server.max_body_bytes", Message: "max body size must be positive"}
	}

	// Validate store configuration
	switch c.Store.Driver {
	case StoreDriverMemory, StoreDriverSQLite:
	default:
		return &ConfigError{Field: "store.driver", Message: "store driver must be one of memory, sqlite"}
	}

	// Validate validation configuration
	if c.Validation.NameMaxLength < 1 {
		return &ConfigError{Field: "validation.name_max_length", Message: "name maximum length must be at least 1"}
	}
	if c.Validation.DescriptionMaxLength < 0 {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length cannot be negative"}
	}

	// Validate logging configuration
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "logging.level", Message: "log level must be one of debug, info, warn, error"}
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return &ConfigError{Field: "logging.format", Message: "log format must be json or text"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
