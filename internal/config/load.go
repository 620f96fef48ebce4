package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
// The result is validated.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./locomotion.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "MidgardLocomotion")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "MidgardLocomotion")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "midgard-locomotion")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "midgard-locomotion")
	}
}

// loadFromFile merges a YAML file over cfg. A script in the file replaces
// the default script rather than extending it.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var probe struct {
		Simulation struct {
			Script yaml.Node `yaml:"script"`
		} `yaml:"simulation"`
		Level struct {
			Boxes    yaml.Node `yaml:"boxes"`
			Triggers yaml.Node `yaml:"triggers"`
		} `yaml:"level"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return err
	}
	if !probe.Simulation.Script.IsZero() {
		cfg.Simulation.Script = nil
	}
	if !probe.Level.Boxes.IsZero() {
		cfg.Level.Boxes = nil
	}
	if !probe.Level.Triggers.IsZero() {
		cfg.Level.Triggers = nil
	}
	return yaml.Unmarshal(data, cfg)
}
