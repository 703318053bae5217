// Package setup initialises OpenTelemetry tracing with a configurable source
// of randomness for trace and span IDs.
//
//	rt, err := setup.New("checkout").
//		WithRng(frandrng.New()).
//		Init(ctx)
//	if err != nil {
//		return err
//	}
//	defer rt.BlockingFlush(5 * time.Second)
//
// Export is opt-in: without an explicit exporter or an OTLP endpoint the
// runtime still hands out trace IDs from the configured source but exports
// nothing, and flushing succeeds immediately.
package setup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/otelrand/frandrng"
	"github.com/louisbranch/otelrand/idgen"
	"github.com/louisbranch/otelrand/rng"
)

// checkLinked verifies the linked generator release at Init.
var checkLinked = frandrng.CheckLinked

// Builder collects tracing options before Init.
type Builder struct {
	serviceName string
	source      rng.Rng
	exporter    sdktrace.SpanExporter
	cfg         *Config
}

// New starts a setup for serviceName.
func New(serviceName string) *Builder {
	return &Builder{serviceName: serviceName}
}

// WithRng sets the randomness source for trace and span IDs. The default is
// frandrng.New().
func (b *Builder) WithRng(source rng.Rng) *Builder {
	b.source = source
	return b
}

// WithExporter sets the span exporter, taking precedence over the configured
// endpoint.
func (b *Builder) WithExporter(exporter sdktrace.SpanExporter) *Builder {
	b.exporter = exporter
	return b
}

// WithConfig sets the configuration. Without it Init reads LoadConfig.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.cfg = &cfg
	return b
}

// Init builds the tracer provider.
func (b *Builder) Init(ctx context.Context) (*Runtime, error) {
	name := strings.TrimSpace(b.serviceName)
	if name == "" {
		return nil, errors.New("service name is required")
	}

	var cfg Config
	if b.cfg != nil {
		cfg = *b.cfg
	} else {
		loaded, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cfg.CheckVersion {
		if err := checkLinked(); err != nil {
			return nil, fmt.Errorf("check rng version: %w", err)
		}
	}

	source := b.source
	if source == nil {
		source = frandrng.New()
	}
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithIDGenerator(idgen.New(source)),
	}

	exporter := b.exporter
	if cfg.Enabled && exporter == nil && cfg.Endpoint != "" {
		created, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.Endpoint))
		if err != nil {
			return nil, fmt.Errorf("otlp exporter: %w", err)
		}
		exporter = created
	}

	exporting := cfg.Enabled && exporter != nil
	if exporting {
		res, err := resource.New(ctx,
			resource.WithAttributes(
				semconv.ServiceName(name),
			),
		)
		if err != nil {
			return nil, fmt.Errorf("resource: %w", err)
		}
		opts = append(opts,
			sdktrace.WithBatcher(exporter),
			sdktrace.WithResource(res),
			sdktrace.WithSampler(sampler(cfg.SampleRatio)),
		)
	}

	tp := sdktrace.NewTracerProvider(opts...)
	if cfg.Global {
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.TraceContext{})
	}

	return &Runtime{provider: tp, exporting: exporting}, nil
}

func sampler(ratio float64) sdktrace.Sampler {
	switch {
	case ratio >= 1:
		return sdktrace.AlwaysSample()
	case ratio <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
	}
}

// Runtime is an initialised tracing setup.
type Runtime struct {
	provider  *sdktrace.TracerProvider
	exporting bool
}

// TracerProvider returns the underlying provider.
func (r *Runtime) TracerProvider() *sdktrace.TracerProvider {
	return r.provider
}

// Tracer returns a named tracer from the provider.
func (r *Runtime) Tracer(name string, opts ...trace.TracerOption) trace.Tracer {
	return r.provider.Tracer(name, opts...)
}

// Exporting reports whether spans are exported.
func (r *Runtime) Exporting() bool {
	return r.exporting
}

// BlockingFlush exports pending spans, waiting at most timeout. It reports
// whether the flush completed in time.
func (r *Runtime) BlockingFlush(timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return r.provider.ForceFlush(ctx) == nil
}

// Shutdown flushes pending spans and stops the provider.
func (r *Runtime) Shutdown(ctx context.Context) error {
	return r.provider.Shutdown(ctx)
}
