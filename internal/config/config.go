package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Logging LogConfig
	Plot    PlotConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// PlotConfig holds plot rendering configuration.
type PlotConfig struct {
	Format      string  `envconfig:"PLOT_FORMAT" default:"pdf"`
	SideInches  float64 `envconfig:"PLOT_SIDE_INCHES" default:"6"`
	LabelFormat string  `envconfig:"PLOT_LABEL_FORMAT" default:"%.1f"`
}

// Load loads configuration from BATCHPLOT_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("batchplot", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "warn",
			Development: false,
		},
		Plot: PlotConfig{
			Format:      "pdf",
			SideInches:  6,
			LabelFormat: "%.1f",
		},
	}
}
