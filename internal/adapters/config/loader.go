// Package config resolves toolchain settings from the environment.
package config

import (
	"os"
	"strings"
	"time"

	"go.trai.ch/stylegen/internal/core/domain"
	"go.trai.ch/stylegen/internal/core/ports"
	"go.trai.ch/zerr"
)

// Environment variables that override the built-in defaults.
const (
	EnvCompiler       = "STYLEGEN_COMPILER"
	EnvRunner         = "STYLEGEN_RUNNER"
	EnvExtractTimeout = "STYLEGEN_EXTRACT_TIMEOUT"
)

var _ ports.SettingsLoader = (*Loader)(nil)

// LookupFunc reports the value of an environment variable and whether it is set.
type LookupFunc func(key string) (string, bool)

// Loader implements ports.SettingsLoader on top of environment variables.
type Loader struct {
	logger ports.Logger
	lookup LookupFunc
}

// NewLoader creates a Loader that reads the process environment.
func NewLoader(log ports.Logger) *Loader {
	return NewLoaderWithLookup(log, os.LookupEnv)
}

// NewLoaderWithLookup creates a Loader that reads variables through lookup.
func NewLoaderWithLookup(log ports.Logger, lookup LookupFunc) *Loader {
	return &Loader{logger: log, lookup: lookup}
}

// Load returns domain.DefaultSettings overridden by any STYLEGEN_* variables.
func (l *Loader) Load() (domain.Settings, error) {
	settings := domain.DefaultSettings()

	if v, ok := l.get(EnvCompiler); ok {
		settings.Compiler = v
	}
	if v, ok := l.get(EnvRunner); ok {
		settings.Runner = v
	}
	if v, ok := l.get(EnvExtractTimeout); ok {
		timeout, err := time.ParseDuration(v)
		if err != nil || timeout < 0 {
			return domain.Settings{}, zerr.With(
				zerr.Wrap(domain.ErrInvalidSettings, EnvExtractTimeout+" must be a non-negative duration"),
				"value", v,
			)
		}
		settings.ExtractTimeout = timeout
	}

	return settings, nil
}

func (l *Loader) get(key string) (string, bool) {
	v, ok := l.lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		l.logger.Warn(key + " is set but empty, using the default")
		return "", false
	}
	return v, true
}
