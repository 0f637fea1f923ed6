// Package config loads application configuration for the statements CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Config holds user-level settings.
type Config struct {
	// Model is the model alias used for classification.
	Model string `yaml:"model,omitempty"`

	// Timezone is the IANA timezone for date resolution. Empty means UTC.
	Timezone string `yaml:"timezone,omitempty"`

	// DataDir is where the collection is stored. Empty means ~/.statements.
	DataDir string `yaml:"data_dir,omitempty"`

	// LogLevel controls log verbosity: debug, info, warn, or error.
	LogLevel string `yaml:"log_level,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Model:    "statements-default",
		Timezone: "UTC",
		DataDir:  "~/.statements",
		LogLevel: "warn",
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "statements.yaml"
	}
	return filepath.Join(home, ".statements", "config.yaml")
}

// Load reads a YAML config file, filling unset fields from the defaults.
// A missing file returns the defaults.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	applyDefaults(config)
	return config, nil
}

// Save writes the config as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func applyDefaults(config *Config) {
	defaults := Default()
	if config.Model == "" {
		config.Model = defaults.Model
	}
	if config.Timezone == "" {
		config.Timezone = defaults.Timezone
	}
	if config.DataDir == "" {
		config.DataDir = defaults.DataDir
	}
	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}
}
