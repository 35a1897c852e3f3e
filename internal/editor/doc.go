// Package editor owns buffers: content plus history plus metadata, kept
// behind a dense BufferHandle slab with free-list reuse. Deletion is
// deferred — a handle stays resolvable until the caller drains pending
// removals, so events already queued against it remain valid.
package editor

import "errors"

// Errors for editor operations. No function in this package returns
// them: Collection.Get reports a missing buffer through its bool result.
var (
	ErrInvalidHandle = errors.New("invalid buffer handle")
	ErrUnsavedChanges = errors.New("buffer has unsaved changes")
)
