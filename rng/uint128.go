package rng

import (
	"encoding/binary"
	"encoding/hex"
)

// Uint128 is an unsigned 128-bit value split into its high and low halves.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Uint128FromBytes decodes a big-endian 128-bit value.
func Uint128FromBytes(b [16]byte) Uint128 {
	return Uint128{
		Hi: binary.BigEndian.Uint64(b[:8]),
		Lo: binary.BigEndian.Uint64(b[8:]),
	}
}

// IsZero reports whether all 128 bits are zero.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Bytes returns the big-endian encoding of u.
func (u Uint128) Bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], u.Hi)
	binary.BigEndian.PutUint64(b[8:], u.Lo)
	return b
}

// String returns u as 32 lowercase hex digits.
func (u Uint128) String() string {
	b := u.Bytes()
	return hex.EncodeToString(b[:])
}
