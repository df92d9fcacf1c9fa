// Package config loads tool configuration and timeout settings.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultRegion is used when the config file does not name a region.
const DefaultRegion = "eu-west-1"

// Config holds the provider and template settings for a run.
type Config struct {
	// Region selects the CloudFormation API region.
	Region string `yaml:"region"`

	// TemplateDir is the base directory for relative template locators.
	TemplateDir string `yaml:"template_dir"`

	// AccessKey and SecretKey optionally pin static credentials.
	// When empty, the default AWS credential chain applies.
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`

	// LogLevel controls CLI log verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// Default returns a Config populated with defaults only.
func Default() *Config {
	return &Config{Region: DefaultRegion, LogLevel: "info"}
}

// LoadFile reads and parses the configuration from a YAML file.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration for inconsistent settings.
func (c *Config) Validate() error {
	if c.Region == "" {
		return fmt.Errorf("region must not be empty")
	}
	if (c.AccessKey == "") != (c.SecretKey == "") {
		return fmt.Errorf("access_key and secret_key must be set together")
	}
	if c.TemplateDir != "" {
		info, err := os.Stat(c.TemplateDir)
		if err != nil {
			return fmt.Errorf("template_dir %q: %w", c.TemplateDir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("template_dir %q is not a directory", c.TemplateDir)
		}
	}
	return nil
}
