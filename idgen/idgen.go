// Package idgen generates OpenTelemetry trace and span IDs from an rng.Rng.
//
// Trace IDs are drawn from Uint128 and span IDs from Uint64. Invalid
// (all-zero) IDs are redrawn. When the configured source reports that no
// randomness is available the generator switches to its fallback source for
// that draw.
package idgen

import (
	"context"
	"encoding/binary"
	"log"
	"sync"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/otelrand/frandrng"
	"github.com/louisbranch/otelrand/rng"
)

// maxDraws bounds how many invalid IDs a source may return before it is
// treated as unavailable.
const maxDraws = 8

// Generator implements sdktrace.IDGenerator.
type Generator struct {
	source   rng.Rng
	fallback rng.Rng

	warnOnce sync.Once
}

var _ sdktrace.IDGenerator = (*Generator)(nil)

// Option configures a Generator.
type Option func(*Generator)

// WithFallback sets the source used when the primary source is unavailable.
func WithFallback(fallback rng.Rng) Option {
	return func(g *Generator) {
		if fallback != nil {
			g.fallback = fallback
		}
	}
}

// New creates a Generator drawing from source. A nil source uses frandrng.
func New(source rng.Rng, opts ...Option) *Generator {
	if source == nil {
		source = frandrng.New()
	}
	g := &Generator{source: source, fallback: frandrng.New()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewIDs returns a new trace ID and span ID.
func (g *Generator) NewIDs(ctx context.Context) (trace.TraceID, trace.SpanID) {
	return g.newTraceID(), g.newSpanID()
}

// NewSpanID returns a span ID for a span in traceID.
func (g *Generator) NewSpanID(ctx context.Context, traceID trace.TraceID) trace.SpanID {
	return g.newSpanID()
}

func (g *Generator) newTraceID() trace.TraceID {
	if id, ok := drawTraceID(g.source); ok {
		return id
	}
	g.warnFallback()
	if id, ok := drawTraceID(g.fallback); ok {
		return id
	}
	panic("idgen: no randomness available for trace id")
}

func (g *Generator) newSpanID() trace.SpanID {
	if id, ok := drawSpanID(g.source); ok {
		return id
	}
	g.warnFallback()
	if id, ok := drawSpanID(g.fallback); ok {
		return id
	}
	panic("idgen: no randomness available for span id")
}

func (g *Generator) warnFallback() {
	g.warnOnce.Do(func() {
		log.Printf("idgen: randomness source unavailable, using fallback")
	})
}

func drawTraceID(source rng.Rng) (trace.TraceID, bool) {
	for range maxDraws {
		v, ok := source.Uint128()
		if !ok {
			return trace.TraceID{}, false
		}
		id := trace.TraceID(v.Bytes())
		if id.IsValid() {
			return id, true
		}
	}
	return trace.TraceID{}, false
}

func drawSpanID(source rng.Rng) (trace.SpanID, bool) {
	for range maxDraws {
		v, ok := source.Uint64()
		if !ok {
			return trace.SpanID{}, false
		}
		var id trace.SpanID
		binary.BigEndian.PutUint64(id[:], v)
		if id.IsValid() {
			return id, true
		}
	}
	return trace.SpanID{}, false
}
