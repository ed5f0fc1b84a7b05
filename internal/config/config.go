// Package config loads mathq settings from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Debug      bool     `yaml:"debug"`
	OutputPath string   `yaml:"output_path"`
	PageLimit  *int     `yaml:"page_limit"`
	Reader     string   `yaml:"reader"`
	AI         AIConfig `yaml:"ai"`
}

// AIConfig holds Gemini settings for the ai command.
type AIConfig struct {
	Model  string `yaml:"model"`
	APIKey string `yaml:"api_key"`
}

// Pages returns the page limit; defaults to 5 when unset. Zero is a valid limit.
func (c *Config) Pages() int {
	if c.PageLimit != nil {
		return *c.PageLimit
	}
	return DefaultPageLimit
}

// Default returns a config with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// Load reads and parses the config file at path and applies defaults. A
// relative output_path is resolved against the config file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.PageLimit != nil && *cfg.PageLimit < 0 {
		return nil, fmt.Errorf("invalid page_limit %d: must be >= 0", *cfg.PageLimit)
	}
	if cfg.OutputPath != "" && !filepath.IsAbs(cfg.OutputPath) {
		cfg.OutputPath = filepath.Join(filepath.Dir(path), cfg.OutputPath)
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}

// ApplyEnv overrides file settings with environment variables.
func (c *Config) ApplyEnv() {
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		c.AI.APIKey = key
	}
}
