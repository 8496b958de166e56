package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const envPrefix = "STREAMTUBE_"

// dotenvFile is read before the environment; a missing file is fine.
var dotenvFile = ".env"

// parseEnv overlays cfg with STREAMTUBE_* variables. When environ is nil the
// process environment is used, after loading dotenvFile into it. Variables
// that are not set leave the current value untouched.
func parseEnv(cfg *Config, environ map[string]string) error {
	if environ == nil {
		if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	return env.ParseWithOptions(cfg, env.Options{
		Prefix:      envPrefix,
		Environment: environ,
	})
}
