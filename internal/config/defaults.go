package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Host:   "127.0.0.1",
		DBPath: "portwatch.db",
		Probe: ProbeConfig{
			TimeoutMS:   300,
			Concurrency: 16,
		},
		Watch: WatchConfig{
			IntervalSeconds: 3,
		},
		Kill: KillConfig{
			RequireConfirmation: true,
		},
	}
}

// WriteDefault writes a default configuration to the specified path.
func WriteDefault(path string) error {
	cfg := DefaultConfig()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
