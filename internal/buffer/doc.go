// Package buffer holds line-oriented text content: a BufferContent is a
// vector of independent BufferLine strings, never a rope or piece table.
// Newlines live only between lines; a line's own bytes never contain one.
package buffer

import "errors"

// Errors for content operations. No function in this package returns
// them: DeleteRange swaps a reversed range instead of failing.
var (
	ErrInvalidRange = errors.New("invalid range")
)
