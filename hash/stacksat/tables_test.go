package stacksat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSBox_Reference(t *testing.T) {
	// The PRESENT S-box, part of the algorithm definition.
	expected := [16]uint8{
		0xc, 0x5, 0x6, 0xb, 0x9, 0x0, 0xa, 0xd,
		0x3, 0xe, 0xf, 0x8, 0x4, 0x7, 0x1, 0x2,
	}
	assert.Equal(t, expected, SBox())
}

func TestSBox_Bijection(t *testing.T) {
	var seen [16]bool
	for _, v := range SBox() {
		require.Less(t, v, uint8(16))
		require.False(t, seen[v], "S-box value %d repeated", v)
		seen[v] = true
	}
}

func TestRoundConstants_Reference(t *testing.T) {
	expected := [Rounds]uint8{
		0x1, 0x8, 0xc, 0xe, 0xf, 0x7, 0xb, 0x5,
		0xa, 0xd, 0x6, 0x3, 0x9, 0x4, 0x2, 0x1,
	}
	assert.Equal(t, expected, RoundConstants())
}

func TestRoundConstants_LFSRDerivation(t *testing.T) {
	// The table is the output of the 4-bit LFSR x^4+x+1 seeded at 1,
	// taps at bits 0 and 3, with zero outputs remapped to 15.
	var derived [Rounds]uint8
	s := uint8(1)
	for i := range derived {
		out := s
		if out == 0 {
			out = 15
		}
		derived[i] = out
		s = (s >> 1) | (((s ^ (s >> 3)) & 1) << 3)
	}
	assert.Equal(t, RoundConstants(), derived)
}

func TestPermutation_Bijection(t *testing.T) {
	var seen [StateSize]bool
	for _, p := range Permutation() {
		require.Less(t, p, uint8(StateSize))
		require.False(t, seen[p], "destination %d repeated", p)
		seen[p] = true
	}
}

func TestPermutation_RotateTransposeDerivation(t *testing.T) {
	// perm is the composition of a per-row rotation with a transpose:
	// (r,c) moves to column (c-r) mod 8 of its row, then indices transpose.
	var derived [StateSize]uint8
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			derived[8*r+c] = uint8(8*((c-r+8)%8) + r)
		}
	}
	assert.Equal(t, Permutation(), derived)
}

func TestTables_AccessorsReturnCopies(t *testing.T) {
	s := SBox()
	s[0] = 0
	assert.Equal(t, uint8(0xc), SBox()[0])

	r := RoundConstants()
	r[0] = 0
	assert.Equal(t, uint8(0x1), RoundConstants()[0])

	p := Permutation()
	p[0] = 1
	assert.Equal(t, uint8(0), Permutation()[0])
}
