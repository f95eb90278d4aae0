package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors the file-configurable part of Config, using strings
// for durations to make TOML friendly. Mode and limit are per-invocation
// decisions and stay on the command line.
type FileConfig struct {
	ConnectionString string `toml:"connection_string"`
	Namespace        string `toml:"namespace"`
	Topic            string `toml:"topic"`
	Subscription     string `toml:"subscription"`
	BatchSize        int    `toml:"batch"`
	MaxWait          string `toml:"wait"`
	NoBrowser        *bool  `toml:"no_browser"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.sbdrain/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".sbdrain", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("connection-string", fc.ConnectionString, &cfg.ConnectionString)
	s.setString("namespace", fc.Namespace, &cfg.Namespace)
	s.setString("topic", fc.Topic, &cfg.Topic)
	s.setString("subscription", fc.Subscription, &cfg.Subscription)

	s.setInt("batch", fc.BatchSize, &cfg.BatchSize)

	if err := s.setDuration("wait", fc.MaxWait, &cfg.MaxWait); err != nil {
		return err
	}

	s.setBool("no-browser", fc.NoBrowser, &cfg.NoBrowser)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
