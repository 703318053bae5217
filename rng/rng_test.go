package rng

import (
	"errors"
	"io"
	"testing"
)

type countingRng struct {
	fills int
}

func (c *countingRng) Fill(p []byte) ([]byte, bool) {
	c.fills++
	for i := range p {
		p[i] = byte(i + 1)
	}
	return p, true
}

func (c *countingRng) Uint64() (uint64, bool) { return 1, true }

func (c *countingRng) Uint128() (Uint128, bool) { return Uint128{Lo: 1}, true }

func TestUnavailableReportsNoRandomness(t *testing.T) {
	var source Rng = Unavailable{}

	if _, ok := source.Fill(make([]byte, 4)); ok {
		t.Fatal("expected fill to be unavailable")
	}
	if _, ok := source.Uint64(); ok {
		t.Fatal("expected uint64 to be unavailable")
	}
	if _, ok := source.Uint128(); ok {
		t.Fatal("expected uint128 to be unavailable")
	}
}

func TestReaderFillsBuffer(t *testing.T) {
	source := &countingRng{}
	buf := make([]byte, 5)

	n, err := io.ReadFull(Reader(source), buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if n != 5 {
		t.Fatalf("expected 5 bytes, got %d", n)
	}
	if buf[0] != 1 || buf[4] != 5 {
		t.Fatalf("unexpected buffer %v", buf)
	}
	if source.fills != 1 {
		t.Fatalf("expected a single fill, got %d", source.fills)
	}
}

func TestReaderUnavailable(t *testing.T) {
	_, err := Reader(Unavailable{}).Read(make([]byte, 8))
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestReaderNilSource(t *testing.T) {
	_, err := Reader(nil).Read(make([]byte, 8))
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestUint128Bytes(t *testing.T) {
	u := Uint128{Hi: 0x0102030405060708, Lo: 0x090a0b0c0d0e0f10}
	b := u.Bytes()
	for i := range b {
		if b[i] != byte(i+1) {
			t.Fatalf("byte %d: expected %d, got %d", i, i+1, b[i])
		}
	}
	if got := Uint128FromBytes(b); got != u {
		t.Fatalf("expected %v, got %v", u, got)
	}
}

func TestUint128String(t *testing.T) {
	u := Uint128{Hi: 0xabcdef, Lo: 1}
	want := "0000000000abcdef0000000000000001"
	if got := u.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestUint128IsZero(t *testing.T) {
	if !(Uint128{}).IsZero() {
		t.Fatal("expected zero value to be zero")
	}
	if (Uint128{Lo: 1}).IsZero() {
		t.Fatal("expected low bit set to be non-zero")
	}
	if (Uint128{Hi: 1}).IsZero() {
		t.Fatal("expected high bit set to be non-zero")
	}
}
