// Package stacksat128 provides the STACKSAT-128 hash function, a 256-bit
// sponge hash designed to run on stack machines that only offer 4-bit
// modular arithmetic, small-table reads and element moves, such as
// Bitcoin Script.
package stacksat128

import (
	"github.com/dromara/stacksat128/hash"
)

const Version = "1.0.0"

var (
	// Hash defines a Hasher instance.
	Hash = hash.NewHasher()
)
