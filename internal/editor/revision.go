package editor

import "sync/atomic"

// RevisionID uniquely identifies a buffer revision. It increases on every
// mutation, including undo and redo, so a view can cheaply detect whether
// the buffer it is looking at has changed since it last checked.
type RevisionID uint64

var revisionCounter uint64

// NewRevisionID returns a fresh, process-wide unique revision ID.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}
