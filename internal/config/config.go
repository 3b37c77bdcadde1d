package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultRemoteDisplay = ":0"

type HostConfig struct {
	Host    string `yaml:"host"`
	User    string `yaml:"user"`
	SSHKey  string `yaml:"ssh_key"`
	Display string `yaml:"display"`
	Binary  string `yaml:"binary"`
}

type Config struct {
	Binary   string                `yaml:"binary"`
	Display  string                `yaml:"display"`
	LogLevel string                `yaml:"log_level"`
	LogFile  string                `yaml:"log_file"`
	History  *bool                 `yaml:"history"`
	Hosts    map[string]HostConfig `yaml:"hosts"`
}

// HistoryEnabled reports whether runs are recorded; unset means yes.
func (c *Config) HistoryEnabled() bool {
	return c.History == nil || *c.History
}

// DefaultPath returns ~/.config/xdoctl/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "xdoctl", "config.yaml")
}

// Load reads the config at path, or DefaultPath when path is empty.
// Returns a default config if the file doesn't exist.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		}
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Binary == "" {
		cfg.Binary = "xdotool"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	home, _ := os.UserHomeDir()
	for name, h := range cfg.Hosts {
		if h.Display == "" {
			h.Display = defaultRemoteDisplay
		}
		if h.Binary == "" {
			h.Binary = cfg.Binary
		}
		// Expand ~ in ssh_key
		if home != "" && len(h.SSHKey) > 0 && h.SSHKey[0] == '~' {
			h.SSHKey = filepath.Join(home, h.SSHKey[1:])
		}
		cfg.Hosts[name] = h
	}
}
