// Package rng defines the randomness capability consumed by the tracing
// setup.
//
// Every operation reports availability with a comma-ok result. A false
// result means no randomness could be produced; callers decide whether to
// fall back, fail, or panic.
package rng

import (
	"errors"
	"io"
)

// ErrUnavailable is returned by helpers that translate an unavailable
// capability result into an error.
var ErrUnavailable = errors.New("randomness unavailable")

// Rng is a source of uniformly distributed random values.
type Rng interface {
	// Fill fills every byte of p and returns it. When the result is false the
	// contents of p are unspecified.
	Fill(p []byte) ([]byte, bool)
	// Uint64 returns a uniformly distributed 64-bit value.
	Uint64() (uint64, bool)
	// Uint128 returns a uniformly distributed 128-bit value.
	Uint128() (Uint128, bool)
}

// Internal marks an Rng as suitable for use as the default source of a
// tracing setup.
type Internal interface {
	Rng
	InternalRng()
}

// Unavailable is an Rng that never produces randomness.
type Unavailable struct{}

func (Unavailable) Fill(p []byte) ([]byte, bool) { return p, false }

func (Unavailable) Uint64() (uint64, bool) { return 0, false }

func (Unavailable) Uint128() (Uint128, bool) { return Uint128{}, false }

// Reader adapts r to an io.Reader.
func Reader(r Rng) io.Reader {
	return reader{source: r}
}

type reader struct {
	source Rng
}

func (r reader) Read(p []byte) (int, error) {
	if r.source == nil {
		return 0, ErrUnavailable
	}
	if _, ok := r.source.Fill(p); !ok {
		return 0, ErrUnavailable
	}
	return len(p), nil
}
