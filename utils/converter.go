// Package utils provides zero-copy conversion helpers shared by the
// public packages.
package utils

import (
	"unsafe"
)

// String2Bytes converts a string to a byte slice without copying.
//
// WARNING: the returned slice aliases the string's memory and must be
// treated as read-only. Prefer []byte(s) if a writable copy is needed.
func String2Bytes(s string) []byte {
	if len(s) == 0 {
		return []byte{}
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Bytes2String converts a byte slice to a string without copying.
//
// WARNING: the input slice must not be modified after conversion, as
// strings are immutable. Prefer string(b) if a copy is needed.
func Bytes2String(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
