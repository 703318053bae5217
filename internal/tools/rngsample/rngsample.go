// Package rngsample draws values from a randomness source and prints them as
// hex, one per line.
package rngsample

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/louisbranch/otelrand/frandrng"
	platformcmd "github.com/louisbranch/otelrand/internal/platform/cmd"
	"github.com/louisbranch/otelrand/rng"
)

// Sample kinds.
const (
	KindBytes = "bytes"
	KindU64   = "u64"
	KindU128  = "u128"
)

// Config holds configuration for sampling.
type Config struct {
	Kind  string `env:"SAMPLE_KIND" envDefault:"u128"`
	Count int    `env:"SAMPLE_COUNT" envDefault:"1"`
	Bytes int    `env:"SAMPLE_BYTES" envDefault:"32"`
}

// ParseConfig loads env defaults and then parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Kind, "kind", cfg.Kind, "value kind: bytes, u64 or u128")
	fs.IntVar(&cfg.Count, "count", cfg.Count, "number of values to draw")
	fs.IntVar(&cfg.Bytes, "bytes", cfg.Bytes, "buffer length for -kind bytes")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the sampling parameters.
func (c Config) Validate() error {
	switch c.Kind {
	case KindBytes, KindU64, KindU128:
	default:
		return fmt.Errorf("unknown kind %q", c.Kind)
	}
	if c.Count <= 0 {
		return errors.New("count must be greater than zero")
	}
	if c.Bytes <= 0 {
		return errors.New("bytes must be greater than zero")
	}
	return nil
}

// Run draws cfg.Count values from source and writes them to out. A nil
// source uses frandrng; a nil tracer records nothing.
func Run(ctx context.Context, cfg Config, out io.Writer, source rng.Rng, tracer trace.Tracer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if out == nil {
		return errors.New("output is required")
	}
	if source == nil {
		source = frandrng.New()
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}

	for i := range cfg.Count {
		line, err := draw(ctx, tracer, cfg, source, i)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func draw(ctx context.Context, tracer trace.Tracer, cfg Config, source rng.Rng, index int) (string, error) {
	_, span := tracer.Start(ctx, "rngsample.draw", trace.WithAttributes(
		attribute.String("rng.kind", cfg.Kind),
		attribute.Int("rng.index", index),
	))
	defer span.End()

	var (
		line string
		ok   bool
	)
	switch cfg.Kind {
	case KindBytes:
		var buf []byte
		buf, ok = source.Fill(make([]byte, cfg.Bytes))
		line = hex.EncodeToString(buf)
	case KindU64:
		var v uint64
		v, ok = source.Uint64()
		line = fmt.Sprintf("%016x", v)
	case KindU128:
		var v rng.Uint128
		v, ok = source.Uint128()
		line = v.String()
	}
	if !ok {
		span.RecordError(rng.ErrUnavailable)
		return "", fmt.Errorf("generate %s: %w", cfg.Kind, rng.ErrUnavailable)
	}
	return line, nil
}
