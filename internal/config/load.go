package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Source records where a Config came from so it can be rebuilt when the
// file changes.
type Source struct {
	// Path is the config file in use, or "" when none was found.
	Path string
	// Changed holds the names of flags set explicitly on the command line.
	Changed map[string]bool

	base Config
}

// RegisterFlags binds cfg fields to flags on fs and returns the value of the
// --config flag.
func RegisterFlags(fs *pflag.FlagSet, cfg *Config) *string {
	path := fs.String("config", "", "path to TOML config file (default ~/.calculator/config.toml)")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.Telemetry, "telemetry", cfg.Telemetry, "export traces, metrics and logs over OTLP")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "graceful shutdown timeout")
	fs.DurationVar(&cfg.ReadHeaderTimeout, "read-header-timeout", cfg.ReadHeaderTimeout, "HTTP read header timeout")
	return path
}

// Load parses args and layers the config file, .env and CALC_* variables
// beneath the explicitly set flags.
func Load(fs *pflag.FlagSet, args []string) (Config, Source, error) {
	cfg := DefaultConfig()
	path := RegisterFlags(fs, &cfg)

	if err := fs.Parse(args); err != nil {
		return Config{}, Source{}, err
	}

	src := Source{Changed: map[string]bool{}}
	fs.Visit(func(f *pflag.Flag) { src.Changed[f.Name] = true })
	src.base = cfg

	if err := LoadDotEnv(); err != nil {
		return Config{}, Source{}, err
	}

	switch {
	case *path != "":
		if !FileExists(*path) {
			return Config{}, Source{}, fmt.Errorf("config file %s not found", *path)
		}
		src.Path = *path
	case FileExists(DefaultConfigPath()):
		src.Path = DefaultConfigPath()
	}

	cfg, err := src.Reload()
	if err != nil {
		return Config{}, Source{}, err
	}
	return cfg, src, nil
}

// Reload rebuilds the Config from the flag values captured by Load, the
// current contents of the config file and the environment.
func (s Source) Reload() (Config, error) {
	cfg := s.base

	if s.Path != "" {
		fc, err := LoadFileConfig(s.Path)
		if err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
		if err := ApplyFileConfig(&cfg, fc, s.Changed); err != nil {
			return Config{}, err
		}
	}

	if err := ApplyEnvConfig(&cfg, s.Changed); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
