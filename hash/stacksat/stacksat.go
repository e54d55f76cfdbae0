// Package stacksat implements the STACKSAT-128 hash algorithm.
// STACKSAT-128 is a 256-bit sponge hash built on a 16-round
// substitution-permutation network over 64 nibbles. The whole computation
// uses only 4-bit modular additions, 16-entry table lookups and fixed
// position moves, so it can be unrolled into opcode sequences for stack
// machines without bitwise operations, such as Bitcoin Script.
package stacksat

const (
	// Size is the size of a STACKSAT-128 digest in bytes.
	Size = 32
	// BlockSize is the absorption block size in bytes. One block is 32
	// nibbles, the rate half of the 64-nibble sponge state.
	BlockSize = 16
	// Rounds is the number of SPN rounds in one permutation call.
	Rounds = 16

	// rate is the number of nibbles absorbed per permutation call.
	rate = 2 * BlockSize
)

// Sum returns the STACKSAT-128 digest of msg. It is total and
// deterministic: every input, including the empty one, has a digest.
func Sum(msg []byte) [Size]byte {
	var s State
	stream := pad(msg)
	for off := 0; off < len(stream); off += rate {
		s.absorb(stream[off : off+rate])
		s.Permute()
	}
	return s.digest()
}

// pad splits msg into nibbles, high nibble first, and applies multi-rate
// 10*1 padding: one 0x8 marker nibble, zero fill until the length is
// congruent to 31 mod 32, then a closing 0x1. Padding is always applied,
// so the result is a positive multiple of the rate and even an empty
// message absorbs one full block.
func pad(msg []byte) []uint8 {
	n := 2*len(msg) + 2
	stream := make([]uint8, 0, (n+rate-1)/rate*rate)
	for _, b := range msg {
		stream = append(stream, b>>4, b&0x0f)
	}
	stream = append(stream, 0x8)
	for len(stream)%rate != rate-1 {
		stream = append(stream, 0x0)
	}
	return append(stream, 0x1)
}
