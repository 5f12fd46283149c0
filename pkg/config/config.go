// Package config loads tool configuration from the process environment.
//
// A .env file in the working directory, when present, is loaded once per
// process before parsing. Struct fields declare their sources with `env`
// tags:
//
//	type Config struct {
//		SamplesDir string `env:"SAMPLES_DIR" envDefault:"./samples"`
//		LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
//	}
package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrNilPointer is returned when Load receives a nil destination.
	ErrNilPointer = errors.New("nil pointer passed to config loader")

	// ErrParsing wraps failures to parse environment variables into the
	// destination struct.
	ErrParsing = errors.New("failed to parse environment into config")
)

var dotenvOnce sync.Once

// Load fills cfg from the process environment based on its `env` field tags.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	if cfg == nil {
		return ErrNilPointer
	}
	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParsing, err)
	}
	return nil
}
