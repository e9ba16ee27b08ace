package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/steelform/internal/formula"
)

// DefaultFile is the options file looked up in the working directory.
const DefaultFile = "steelform.yaml"

// Config holds the steelform options file.
type Config struct {
	// Generation is the default action applied by batch and formula commands
	Generation formula.GenerationOption `yaml:"generation"`

	// Filter limits batch output to matching categories, e.g. "Angle/Equal,Channel"
	Filter string `yaml:"filter,omitempty"`

	// Workers is the number of cells processed concurrently
	Workers int `yaml:"workers"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Generation: formula.DefaultOption(),
		Workers:    runtime.NumCPU(),
		LogLevel:   "info",
	}
}

// Load loads configuration from a YAML file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults when the file doesn't exist
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies STEELFORM_* environment variables.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("STEELFORM_LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
	if w := os.Getenv("STEELFORM_WORKERS"); w != "" {
		if n, err := strconv.Atoi(w); err == nil {
			c.Workers = n
		}
	}
}

// Validate checks ranges the YAML types cannot express.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return &ValidationError{msg: fmt.Sprintf("workers must be at least 1, got %d", c.Workers)}
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{msg: fmt.Sprintf("unknown log level %q", c.LogLevel)}
	}
	return nil
}

// ValidationError represents an invalid options file
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
