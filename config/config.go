// Package config loads the CLI/daemon configuration from
// $XDG_CONFIG_HOME/atvremote/config.yaml (~/.config/atvremote/config.yaml
// by default). Every value has a working default; the file is optional and
// flags override it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration.
type Config struct {
	// Socket is the daemon's unix socket path.
	Socket string `yaml:"socket,omitempty"`
	// DataDir holds the identity and preferences database.
	DataDir string `yaml:"data-dir,omitempty"`
	// ClientName is announced to the TV during pairing.
	ClientName string `yaml:"client-name,omitempty"`
	// LogLevel is the daemon default: debug, info, warn, or error.
	LogLevel string `yaml:"log-level,omitempty"`
}

// Path returns the config file location, respecting XDG_CONFIG_HOME.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".config", "atvremote", "config.yaml")
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "atvremote", "config.yaml")
}

// DefaultSocket is where the daemon listens when not configured otherwise.
func DefaultSocket() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, "atvremoted.sock")
	}
	return "/tmp/atvremoted.sock"
}

// DefaultDataDir is where the identity and preferences live.
func DefaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "atvremote")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".local", "share", "atvremote")
	}
	return filepath.Join(home, ".local", "share", "atvremote")
}

// Load reads the config file. A missing file yields the defaults, not an
// error.
func Load() (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the config to disk, creating directories as needed.
func (c *Config) Save() error {
	p := Path()
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Socket == "" {
		c.Socket = DefaultSocket()
	}
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir()
	}
	if c.ClientName == "" {
		c.ClientName = "atvremote"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
