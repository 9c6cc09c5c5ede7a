// Package config provides the environment based configuration of queuelint.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variable names
const (
	EnvLimitsParameter = "QUEUELINT_LIMITS_PARAMETER"
	EnvPClusterVersion = "PCLUSTER_VERSION"
	EnvOutputFormat    = "QUEUELINT_OUTPUT"
	EnvDevLogging      = "QUEUELINT_DEV_LOGGING"
	EnvLimitsTimeout   = "QUEUELINT_LIMITS_TIMEOUT"
)

// Output formats
const (
	OutputFormatYAML = "yaml"
	OutputFormatJSON = "json"
)

// Default values
const (
	DefaultPClusterVersion = "3.13.0"
	DefaultOutputFormat    = OutputFormatYAML
	DefaultDevLogging      = false
	DefaultLimitsTimeout   = 10 * time.Second
)

// Config holds all configuration for queuelint
type Config struct {
	// LimitsParameter is the SSM parameter holding the limits; empty disables the lookup
	LimitsParameter string
	// PClusterVersion selects the default limits when no parameter is read
	PClusterVersion string
	LimitsTimeout   time.Duration

	OutputFormat string
	DevLogging   bool
}

// NewConfig creates a Config with values from environment variables
// or defaults if not set
func NewConfig() (*Config, error) {
	config := createDefaultConfig()

	if err := applyLimitsConfig(config); err != nil {
		return nil, err
	}

	if err := applyOutputConfig(config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// createDefaultConfig creates a new Config with default values
func createDefaultConfig() *Config {
	return &Config{
		PClusterVersion: DefaultPClusterVersion,
		LimitsTimeout:   DefaultLimitsTimeout,
		OutputFormat:    DefaultOutputFormat,
		DevLogging:      DefaultDevLogging,
	}
}

// applyLimitsConfig applies limits-related environment variable overrides
func applyLimitsConfig(config *Config) error {
	if parameter := os.Getenv(EnvLimitsParameter); parameter != "" {
		config.LimitsParameter = parameter
	}

	if version := os.Getenv(EnvPClusterVersion); version != "" {
		config.PClusterVersion = version
	}

	if timeout := os.Getenv(EnvLimitsTimeout); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvLimitsTimeout, err)
		}
		config.LimitsTimeout = d
	}

	return nil
}

// applyOutputConfig applies output-related environment variable overrides
func applyOutputConfig(config *Config) error {
	if format := os.Getenv(EnvOutputFormat); format != "" {
		config.OutputFormat = format
	}

	if devLogging := os.Getenv(EnvDevLogging); devLogging != "" {
		enable, err := strconv.ParseBool(devLogging)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvDevLogging, err)
		}
		config.DevLogging = enable
	}

	return nil
}

// Validate checks the values that flags may have overridden
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case OutputFormatYAML, OutputFormatJSON:
	default:
		return fmt.Errorf("invalid output format %q, must be %s or %s", c.OutputFormat, OutputFormatYAML, OutputFormatJSON)
	}

	if c.LimitsTimeout <= 0 {
		return fmt.Errorf("limits timeout (%s) must be greater than 0", c.LimitsTimeout)
	}

	return nil
}
