package hash

import (
	"github.com/dromara/stacksat128/hash/stacksat"
)

// ByStacksat128 computes the STACKSAT-128 digest of the input data.
// The empty input is a valid message and hashes to the published empty
// digest rather than to no output.
func (h Hasher) ByStacksat128() Hasher {
	if h.Error != nil {
		return h
	}
	digest := stacksat.Sum(h.src)
	h.dst = digest[:]
	return h
}
