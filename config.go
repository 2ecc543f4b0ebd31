// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
)

// Option configures a [Registry].
type Option func(*Registry)

// WithLogger sets the registry logger.
//
// Default: zerolog.Nop().
// Registrations, sealing, resolutions and common types are logged at
// debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Registry) {
		r.log = l
	}
}

// WithoutPrelude creates an empty registry: no built-in models, containers,
// adapters or conversion rules. Constants still convert to their value type
// once a value slot is registered for their family.
func WithoutPrelude() Option {
	return func(r *Registry) {
		r.prelude = false
	}
}

// WithConceptChecks enables or disables [Registry.MustModel] assertions,
// such as the Comparable check on Map keys.
//
// Default: enabled.
func WithConceptChecks(on bool) Option {
	return func(r *Registry) {
		r.checks = on
	}
}

// Environment variables read by ConfigFromEnv.
const (
	EnvLogLevel      = "TYPECLASS_LOG_LEVEL"
	EnvConceptChecks = "TYPECLASS_CONCEPT_CHECKS"
)

// Config is the environment configuration of the Default registry.
type Config struct {
	// LogLevel enables logging to stderr at the given level.
	// zerolog.Disabled keeps the Nop logger.
	LogLevel zerolog.Level
	// ConceptChecks toggles MustModel assertions.
	ConceptChecks bool
}

// ConfigFromEnv reads TYPECLASS_LOG_LEVEL (a zerolog level name) and
// TYPECLASS_CONCEPT_CHECKS (a boolean). Unset variables keep the defaults:
// logging disabled, concept checks enabled.
func ConfigFromEnv() (Config, error) {
	cfg := Config{LogLevel: zerolog.Disabled, ConceptChecks: true}
	if s, ok := os.LookupEnv(EnvLogLevel); ok && s != "" {
		lvl, err := zerolog.ParseLevel(s)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}
	if s, ok := os.LookupEnv(EnvConceptChecks); ok && s != "" {
		on, err := strconv.ParseBool(s)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvConceptChecks, err)
		}
		cfg.ConceptChecks = on
	}
	return cfg, nil
}

// Options returns the registry options described by c.
func (c Config) Options() []Option {
	opts := []Option{WithConceptChecks(c.ConceptChecks)}
	if c.LogLevel != zerolog.Disabled {
		l := zerolog.New(os.Stderr).Level(c.LogLevel).With().Timestamp().Str("component", "typeclass").Logger()
		opts = append(opts, WithLogger(l))
	}
	return opts
}

// envOptions configures the Default registry. An invalid variable keeps
// the defaults and is reported on stderr.
func envOptions() []Option {
	cfg, err := ConfigFromEnv()
	if err != nil {
		l := zerolog.New(os.Stderr).With().Timestamp().Logger()
		l.Warn().Err(err).Msg("typeclass: ignoring invalid environment configuration")
	}
	return cfg.Options()
}
