package setup

import (
	"github.com/louisbranch/otelrand/internal/platform/config"
)

// Config controls how Init builds the tracer provider. Fields are read from
// OTELRAND_-prefixed environment variables by LoadConfig.
type Config struct {
	// Enabled turns span export on. When false, or when neither an exporter
	// nor an endpoint is configured, spans are created but never exported.
	Enabled bool `env:"OTEL_ENABLED" envDefault:"true"`
	// Endpoint is the OTLP/HTTP collector URL.
	Endpoint string `env:"OTEL_ENDPOINT"`
	// SampleRatio is the fraction of root traces sampled.
	SampleRatio float64 `env:"OTEL_SAMPLE_RATIO" envDefault:"1"`
	// Global registers the provider and TraceContext propagator with the
	// otel package.
	Global bool `env:"OTEL_GLOBAL" envDefault:"true"`
	// CheckVersion fails Init when the linked frand release does not
	// match the adapter.
	CheckVersion bool `env:"RNG_CHECK_VERSION" envDefault:"true"`
}

// DefaultConfig returns the configuration used when no environment
// variables are set.
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		SampleRatio:  1,
		Global:       true,
		CheckVersion: true,
	}
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
