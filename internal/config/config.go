// Package config loads the optional gitward configuration file. Everything
// in it is a default that flags can override per invocation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds CLI-level defaults.
type Config struct {
	// Tool is the git executable name or path.
	Tool string `yaml:"tool"`

	// TimeoutSeconds is the default per-command timeout.
	TimeoutSeconds int `yaml:"timeoutSeconds"`

	// Debug enables debug console output and file logging.
	Debug bool `yaml:"debug"`

	// LogFile is where debug logs are written when Debug is set. Empty
	// means ~/.local/state/gitward/gitward.log.
	LogFile string `yaml:"logFile"`
}

// Timeout returns the configured timeout as a duration, zero when unset.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "gitward", "config.yaml")
}

// DefaultLogFile returns the conventional debug log location.
func DefaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "gitward", "gitward.log")
}

// Load reads the config file at path. A missing file is not an error: the
// zero Config is returned.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}
