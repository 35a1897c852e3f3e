// Package view implements the buffer view registry: a client's window
// onto a buffer, carrying its own cursor collection. Buffer edits reach
// views through fan-out (OnBufferInsertText / OnBufferDeleteText)
// rather than direct mutation, so buffer code never depends on view
// code.
package view

import "errors"

// ErrViewNotFound reports that a handle does not resolve to a live view.
// No function in this package returns it: Registry.Get reports a missing
// view through its bool result.
var ErrViewNotFound = errors.New("view: handle not found")
