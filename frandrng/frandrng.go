// Package frandrng implements rng.Rng on top of lukechampine.com/frand.
//
// Applications that already depend on frand can configure tracing with this
// adapter and keep a single generator in their dependency tree:
//
//	rt, err := setup.New("my-service").
//		WithRng(frandrng.New()).
//		Init(ctx)
//	if err != nil {
//		return err
//	}
//	defer rt.BlockingFlush(5 * time.Second)
//
// The adapter is stateless. Every call goes through frand's package-level
// generator, a pool of ChaCha streams seeded from the OS entropy source and
// safe for concurrent use, so the adapter never stores a generator handle of
// its own.
//
// Version x.y.z of this package is compatible with frand x.y.*.
package frandrng

import (
	"encoding/binary"

	"lukechampine.com/frand"

	"github.com/louisbranch/otelrand/rng"
)

// Rng is an rng.Rng backed by frand. The zero value is ready to use.
type Rng struct{}

var _ rng.Internal = Rng{}

// New returns a new source of randomness.
func New() Rng {
	return Rng{}
}

// Fill fills every byte of p with random data.
func (Rng) Fill(p []byte) ([]byte, bool) {
	if _, err := frand.Read(p); err != nil {
		return p, false
	}
	return p, true
}

// Uint64 returns a uniformly distributed 64-bit value.
func (r Rng) Uint64() (uint64, bool) {
	var b [8]byte
	if _, ok := r.Fill(b[:]); !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint64(b[:]), true
}

// Uint128 returns a uniformly distributed 128-bit value.
func (r Rng) Uint128() (rng.Uint128, bool) {
	var b [16]byte
	if _, ok := r.Fill(b[:]); !ok {
		return rng.Uint128{}, false
	}
	return rng.Uint128FromBytes(b), true
}

// InternalRng marks the adapter as suitable as a default tracing source.
func (Rng) InternalRng() {}
