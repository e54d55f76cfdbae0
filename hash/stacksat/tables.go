package stacksat

// sbox is the 4-bit PRESENT S-box (Bogdanov et al., CHES 2007). It is the
// only non-linear component of the round function.
var sbox = [16]uint8{
	0xc, 0x5, 0x6, 0xb, 0x9, 0x0, 0xa, 0xd,
	0x3, 0xe, 0xf, 0x8, 0x4, 0x7, 0x1, 0x2,
}

// rc holds the per-round constants: the output stream of the 4-bit LFSR
// with polynomial x^4+x+1 seeded at 1, with zero outputs remapped to 15.
var rc = [Rounds]uint8{
	0x1, 0x8, 0xc, 0xe, 0xf, 0x7, 0xb, 0x5,
	0xa, 0xd, 0x6, 0x3, 0x9, 0x4, 0x2, 0x1,
}

// perm maps each state index to its destination under the linear layer:
// the nibble at (r,c) of the 8x8 matrix moves to column position (c-r)
// mod 8 of its row, then the matrix is transposed, so
// perm[8r+c] = 8*((c-r) mod 8) + r.
var perm = [StateSize]uint8{
	0, 8, 16, 24, 32, 40, 48, 56,
	57, 1, 9, 17, 25, 33, 41, 49,
	50, 58, 2, 10, 18, 26, 34, 42,
	43, 51, 59, 3, 11, 19, 27, 35,
	36, 44, 52, 60, 4, 12, 20, 28,
	29, 37, 45, 53, 61, 5, 13, 21,
	22, 30, 38, 46, 54, 62, 6, 14,
	15, 23, 31, 39, 47, 55, 63, 7,
}

// The accessors below exist for stack-machine code generators, which emit
// the tables as pushed literals and indexed reads. They return copies so
// the process-wide tables stay immutable.

// SBox returns a copy of the substitution table.
func SBox() [16]uint8 { return sbox }

// RoundConstants returns a copy of the per-round constant table.
func RoundConstants() [Rounds]uint8 { return rc }

// Permutation returns a copy of the nibble destination map of the linear
// permutation layer.
func Permutation() [StateSize]uint8 { return perm }
