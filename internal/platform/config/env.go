package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment variable read by this module.
const EnvPrefix = "OTELRAND_"

// ParseEnv loads configuration from environment variables named
// EnvPrefix followed by each field's env tag.
func ParseEnv(target any) error {
	return parseEnvPrefix(target, EnvPrefix)
}

// parseEnvPrefix loads configuration from environment variables using a
// custom prefix. An empty prefix reads the env tags verbatim.
func parseEnvPrefix(target any, prefix string) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: prefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
