// Package base64 implements base64 encoding and decoding for digest
// output. It uses the standard RFC 4648 alphabet with padding and wraps
// the standard library codec behind a consistent encoder/decoder interface
// with error handling capabilities.
package base64

import (
	"encoding/base64"
)

// StdEncoder represents a base64 encoder for standard encoding operations.
type StdEncoder struct {
	Error error // Error field for storing encoding errors
}

// NewStdEncoder creates a new base64 encoder using the standard alphabet.
func NewStdEncoder() *StdEncoder {
	return &StdEncoder{}
}

// Encode encodes the given byte slice using base64 encoding.
// Returns an empty byte slice if the input is empty.
func (e *StdEncoder) Encode(src []byte) (dst []byte) {
	if e.Error != nil {
		return
	}
	if len(src) == 0 {
		return
	}

	dst = make([]byte, base64.StdEncoding.EncodedLen(len(src)))
	base64.StdEncoding.Encode(dst, src)
	return
}

// StdDecoder represents a base64 decoder for standard decoding operations.
type StdDecoder struct {
	Error error // Error field for storing decoding errors
}

// NewStdDecoder creates a new base64 decoder using the standard alphabet.
func NewStdDecoder() *StdDecoder {
	return &StdDecoder{}
}

// Decode decodes the given base64-encoded byte slice back to binary data.
// Malformed input is reported as a CorruptInputError carrying the number
// of bytes decoded cleanly. Returns an empty byte slice and nil error if
// the input is empty.
func (d *StdDecoder) Decode(src []byte) (dst []byte, err error) {
	if d.Error != nil {
		err = d.Error
		return
	}
	if len(src) == 0 {
		return
	}

	buf := make([]byte, base64.StdEncoding.DecodedLen(len(src)))
	n, decodeErr := base64.StdEncoding.Decode(buf, src)
	if decodeErr != nil {
		return nil, CorruptInputError(n)
	}
	return buf[:n], nil
}
