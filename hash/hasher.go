// Package hash provides the STACKSAT-128 hash over strings and byte
// slices, with hex and base64 output helpers. Hashing is strictly
// one-shot: the algorithm is keyless and has no incremental mode.
package hash

import (
	"github.com/dromara/stacksat128/coding/base64"
	"github.com/dromara/stacksat128/coding/hex"
	"github.com/dromara/stacksat128/utils"
)

// Hasher computes digests through a chainable interface. The zero value
// is ready to use; every method returns a derived value, so instances can
// be shared and reused safely.
type Hasher struct {
	src   []byte
	dst   []byte
	Error error
}

// NewHasher returns a new Hasher instance.
func NewHasher() Hasher {
	return Hasher{}
}

// FromString hashes from string.
func (h Hasher) FromString(s string) Hasher {
	h.src = utils.String2Bytes(s)
	return h
}

// FromBytes hashes from byte slice.
func (h Hasher) FromBytes(b []byte) Hasher {
	h.src = b
	return h
}

// ToRawString outputs as raw string without encoding.
func (h Hasher) ToRawString() string {
	return utils.Bytes2String(h.dst)
}

// ToRawBytes outputs as raw byte slice without encoding.
func (h Hasher) ToRawBytes() []byte {
	if len(h.dst) == 0 {
		return []byte{}
	}
	return h.dst
}

// ToHexString outputs as hex string.
func (h Hasher) ToHexString() string {
	return utils.Bytes2String(h.ToHexBytes())
}

// ToHexBytes outputs as hex byte slice.
func (h Hasher) ToHexBytes() []byte {
	if len(h.dst) == 0 {
		return []byte{}
	}
	return hex.NewStdEncoder().Encode(h.dst)
}

// ToBase64String outputs as base64 string.
func (h Hasher) ToBase64String() string {
	return utils.Bytes2String(h.ToBase64Bytes())
}

// ToBase64Bytes outputs as base64 byte slice.
func (h Hasher) ToBase64Bytes() []byte {
	if len(h.dst) == 0 {
		return []byte{}
	}
	return base64.NewStdEncoder().Encode(h.dst)
}
