package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the complete tradebook configuration.
type Config struct {
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Mapping MappingConfig `json:"mapping" yaml:"mapping"`
	Insight InsightConfig `json:"insight" yaml:"insight"`
}

// JournalConfig controls where normalized trades are stored.
type JournalConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// MappingConfig points at an optional saved column mapping that is fed into
// the mapper as the prior (confirmed) mapping on import.
type MappingConfig struct {
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// InsightConfig configures the external AI-insight collaborator. The
// contract with that service is free text; MaxTrades caps how much of the
// trade list is handed over.
type InsightConfig struct {
	Model     string `json:"model" yaml:"model"`
	Endpoint  string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	MaxTrades int    `json:"max_trades" yaml:"max_trades"`
}

// LoadFromFile loads configuration from a file (YAML or JSON, tried in that
// order).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile saves configuration to a file, YAML for .yaml/.yml extensions
// and JSON otherwise.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	if c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path is required")
	}
	if c.Insight.MaxTrades < 0 {
		return fmt.Errorf("insight.max_trades must not be negative")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Journal: JournalConfig{
			DBPath: "./tradebook.sqlite",
		},
		Insight: InsightConfig{
			Model:     "claude-3-5-haiku-latest",
			MaxTrades: 100,
		},
	}
}
