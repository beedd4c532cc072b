package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/devguard-ai/devguard/internal/models"
)

type Config struct {
	Plan         models.Plan `yaml:"plan"`
	Connected    bool        `yaml:"connected"`
	Repository   string      `yaml:"repository"`
	FixturesDir  string      `yaml:"fixtures_dir"`
	OutputFormat string      `yaml:"output_format"`
	NoColor      bool        `yaml:"no_color"`
	Log          LogConfig   `yaml:"log"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

func Default() *Config {
	return &Config{
		Plan:         models.PlanFree,
		Connected:    true,
		OutputFormat: "table",
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads path over the defaults. An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.OutputFormat != "" && c.OutputFormat != "table" && c.OutputFormat != "json" {
		return fmt.Errorf("invalid output_format: %s", c.OutputFormat)
	}

	if c.Plan != "" && !c.Plan.Valid() {
		return fmt.Errorf("invalid plan: %s", c.Plan)
	}

	validLevels := map[string]bool{"": true, "debug": true, "info": true, "warn": true, "error": true, "disabled": true}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	return nil
}
