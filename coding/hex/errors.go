package hex

import "fmt"

// CorruptInputError represents an error when corrupted or invalid hex data
// is detected during decoding: an illegal character or an odd-length
// input. The value is the number of bytes decoded before the corruption.
type CorruptInputError int

// Error returns a formatted error message describing the corrupted input.
func (e CorruptInputError) Error() string {
	return fmt.Sprintf("coding/hex: corrupt input after %d decoded bytes", int(e))
}
