// Package hex implements hex encoding and decoding for digest output and
// test vector material. It uses the lowercase alphabet (0-9, a-f) and wraps
// the standard library codec behind a consistent encoder/decoder interface
// with error handling capabilities.
package hex

import (
	"encoding/hex"
)

// StdEncoder represents a hex encoder for standard encoding operations.
type StdEncoder struct {
	Error error // Error field for storing encoding errors
}

// NewStdEncoder creates a new hex encoder using the lowercase hex alphabet.
func NewStdEncoder() *StdEncoder {
	return &StdEncoder{}
}

// Encode encodes the given byte slice using hex encoding.
// Returns an empty byte slice if the input is empty.
func (e *StdEncoder) Encode(src []byte) (dst []byte) {
	if e.Error != nil {
		return
	}
	if len(src) == 0 {
		return
	}

	dst = make([]byte, hex.EncodedLen(len(src)))
	hex.Encode(dst, src)
	return
}

// StdDecoder represents a hex decoder for standard decoding operations.
type StdDecoder struct {
	Error error // Error field for storing decoding errors
}

// NewStdDecoder creates a new hex decoder. It accepts both lowercase and
// uppercase hex digits.
func NewStdDecoder() *StdDecoder {
	return &StdDecoder{}
}

// Decode decodes the given hex-encoded byte slice back to binary data.
// Malformed input, including odd-length input, is reported as a
// CorruptInputError carrying the number of bytes decoded cleanly.
// Returns an empty byte slice and nil error if the input is empty.
func (d *StdDecoder) Decode(src []byte) (dst []byte, err error) {
	if d.Error != nil {
		err = d.Error
		return
	}
	if len(src) == 0 {
		return
	}

	buf := make([]byte, hex.DecodedLen(len(src)))
	n, decodeErr := hex.Decode(buf, src)
	if decodeErr != nil {
		return nil, CorruptInputError(n)
	}
	return buf[:n], nil
}
