package base64

import "fmt"

// CorruptInputError represents an error when corrupted or invalid base64
// data is detected during decoding: an illegal character or bad padding.
// The value is the number of bytes decoded before the corruption.
type CorruptInputError int

// Error returns a formatted error message describing the corrupted input.
func (e CorruptInputError) Error() string {
	return fmt.Sprintf("coding/base64: corrupt input after %d decoded bytes", int(e))
}
