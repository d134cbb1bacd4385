package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with string durations for TOML.
type FileConfig struct {
	Addr              string `toml:"addr"`
	LogLevel          string `toml:"log_level"`
	Telemetry         *bool  `toml:"telemetry"`
	ShutdownTimeout   string `toml:"shutdown_timeout"`
	ReadHeaderTimeout string `toml:"read_header_timeout"`
}

// LoadFileConfig reads and parses a TOML config file.
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

// DefaultConfigPath returns ~/.calculator/config.toml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".calculator", "config.toml")
	}
	return ""
}

// ApplyFileConfig copies file values into cfg, skipping flags in changed.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("addr", fc.Addr, &cfg.Addr)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setBool("telemetry", fc.Telemetry, &cfg.Telemetry)

	if err := s.setDuration("shutdown-timeout", fc.ShutdownTimeout, &cfg.ShutdownTimeout); err != nil {
		return err
	}
	if err := s.setDuration("read-header-timeout", fc.ReadHeaderTimeout, &cfg.ReadHeaderTimeout); err != nil {
		return err
	}

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
