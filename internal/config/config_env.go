package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvAddr              = "CALC_ADDR"
	EnvLogLevel          = "CALC_LOG_LEVEL"
	EnvTelemetry         = "CALC_TELEMETRY"
	EnvShutdownTimeout   = "CALC_SHUTDOWN_TIMEOUT"
	EnvReadHeaderTimeout = "CALC_READ_HEADER_TIMEOUT"
)

// LoadDotEnv loads variables from the given .env files (".env" when none are
// given). Missing files are ignored and existing process variables are not
// overridden.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		err := godotenv.Load(f)
		if err == nil || errors.Is(err, os.ErrNotExist) {
			continue
		}
		return fmt.Errorf("load %s: %w", f, err)
	}
	return nil
}

// ApplyEnvConfig applies CALC_* variables to cfg. Env overrides the file
// but not flags listed in changed.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("addr", os.Getenv(EnvAddr), &cfg.Addr)
	s.setString("log-level", os.Getenv(EnvLogLevel), &cfg.LogLevel)
	s.setBoolFromString("telemetry", os.Getenv(EnvTelemetry), &cfg.Telemetry)

	if err := s.setDuration("shutdown-timeout", os.Getenv(EnvShutdownTimeout), &cfg.ShutdownTimeout); err != nil {
		return err
	}
	if err := s.setDuration("read-header-timeout", os.Getenv(EnvReadHeaderTimeout), &cfg.ReadHeaderTimeout); err != nil {
		return err
	}

	return nil
}
