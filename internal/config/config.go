// Package config loads and validates the portwatch YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the application configuration.
type Config struct {
	Host   string      `mapstructure:"host" yaml:"host"`
	DBPath string      `mapstructure:"db_path" yaml:"db_path"`
	Probe  ProbeConfig `mapstructure:"probe" yaml:"probe"`
	Watch  WatchConfig `mapstructure:"watch" yaml:"watch"`
	Kill   KillConfig  `mapstructure:"kill" yaml:"kill"`
}

// ProbeConfig controls individual port probes and scan fan-out.
type ProbeConfig struct {
	TimeoutMS   int `mapstructure:"timeout_ms" yaml:"timeout_ms"`
	Concurrency int `mapstructure:"concurrency" yaml:"concurrency"`
}

// WatchConfig controls the repeating watch loop.
type WatchConfig struct {
	IntervalSeconds int `mapstructure:"interval_seconds" yaml:"interval_seconds"`
}

// KillConfig controls the kill command surface.
type KillConfig struct {
	RequireConfirmation bool `mapstructure:"require_confirmation" yaml:"require_confirmation"`
}

// Load reads and parses configuration from a YAML file. If path is empty,
// searches for portwatch.yaml in the current directory, ./configs, and
// ~/.config/portwatch/.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("portwatch")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")

		homeDir, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".config", "portwatch"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if c.Host == "" {
		errs = append(errs, errors.New("host cannot be empty"))
	}

	if c.Probe.TimeoutMS <= 0 {
		errs = append(errs, errors.New("probe.timeout_ms must be positive"))
	}

	if c.Probe.Concurrency <= 0 {
		errs = append(errs, errors.New("probe.concurrency must be positive"))
	}

	if c.Watch.IntervalSeconds <= 0 {
		errs = append(errs, errors.New("watch.interval_seconds must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
