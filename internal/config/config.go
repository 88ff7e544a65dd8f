// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"payroll/internal/errors"
	"payroll/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" yaml:"version"`

	// Output contains display configuration
	Output OutputConfig `json:"output" yaml:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" yaml:"logging"`
}

// OutputConfig contains display settings for the interactive session
type OutputConfig struct {
	// Color enables ANSI colors on diagnostics and headings
	Color bool `json:"color" yaml:"color"`

	// RuleWidth is the width of the -/= rules around display blocks
	RuleWidth int `json:"rule_width" yaml:"rule_width"`

	// CurrencySymbol prefixes every monetary amount
	CurrencySymbol string `json:"currency_symbol" yaml:"currency_symbol"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Output: OutputConfig{
			Color:          false,
			RuleWidth:      60,
			CurrencySymbol: "$",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file. A missing file yields the defaults.
// Files ending in .yaml or .yml are read as YAML, everything else as JSON.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("failed to read config "+path, err)
	}

	config := Default()
	if isYAML(path) {
		err = yaml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, errors.Config("failed to parse config "+path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks settings that would break the display contract
func (c *Config) Validate() error {
	if c.Output.RuleWidth <= 0 {
		return errors.Newf(errors.TypeConfig, "output.rule_width must be positive, got %d", c.Output.RuleWidth)
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
