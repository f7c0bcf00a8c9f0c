package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file.
	userConfigFile = ".invconfig.yaml"

	// Default configuration values
	DefaultLowStockThreshold = 5
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "console"
)

// Config represents user configuration from .invconfig.yaml.
// This file is user-managed and never written by inv.
type Config struct {
	// File is the inventory file, relative to the config directory unless absolute.
	File string `yaml:"file"`

	// LowStockThreshold is the exclusive bound used by `inv low`.
	LowStockThreshold int `yaml:"low_stock_threshold"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFormat is "console" or "json".
	LogFormat string `yaml:"log_format"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		File:              DefaultFile,
		LowStockThreshold: DefaultLowStockThreshold,
		LogLevel:          DefaultLogLevel,
		LogFormat:         DefaultLogFormat,
	}
}

// LoadConfig loads .invconfig.yaml from dir if it exists, otherwise returns defaults.
// Partial config files are merged with defaults.
func LoadConfig(dir string) (*Config, error) {
	configPath := ConfigPath(dir)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
	}

	if cfg.File == "" {
		cfg.File = DefaultFile
	}

	return cfg, nil
}

// ConfigPath returns the path to the user config file in dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, userConfigFile)
}

// InventoryPath resolves the configured inventory file against dir.
func (c *Config) InventoryPath(dir string) string {
	if filepath.IsAbs(c.File) {
		return c.File
	}
	return filepath.Join(dir, c.File)
}
