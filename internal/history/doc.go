// Package history records buffer edits as a sequence of undo groups with
// edit coalescing: consecutive compatible edits from the same cursor merge
// into a single stored entry instead of piling up one entry per keystroke.
//
// History only records; it never touches a buffer. Callers apply the
// EditInternal values Undo/Redo return against their own BufferContent.
package history

import "errors"

// Errors returned by history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)
