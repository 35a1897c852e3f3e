// Package codec implements the binary wire framework used by protocol
// clients (LSP transports, the debugger adapter): fixed-width
// integers, length-prefixed strings, and tagged unions, all little
// endian.
//
// Every message is [u16 discriminant][payload]. Strings are
// [u16 len][bytes]. IDs are u32 and 0 is reserved; deserializing an id
// of 0 is InvalidData.
package codec

import "errors"

// ErrInsufficientData is returned when the buffer is exhausted before
// a read completes.
var ErrInsufficientData = errors.New("codec: insufficient data")

// ErrInvalidData is returned when a value violates a wire-format
// constraint (a zero ID, an unknown tagged-union discriminant).
var ErrInvalidData = errors.New("codec: invalid data")
