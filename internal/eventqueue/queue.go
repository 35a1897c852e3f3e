package eventqueue

import (
	"sync"

	"github.com/pepperedit/core/internal/editor"
	"github.com/pepperedit/core/internal/position"
)

// Kind tags the variant of an Event.
type Kind uint8

const (
	BufferInsert Kind = iota
	BufferDelete
	BufferLoad
	BufferClose
)

func (k Kind) String() string {
	switch k {
	case BufferInsert:
		return "BufferInsert"
	case BufferDelete:
		return "BufferDelete"
	case BufferLoad:
		return "BufferLoad"
	case BufferClose:
		return "BufferClose"
	default:
		return "Unknown"
	}
}

// Event is a single tagged mutation record. Range is populated for
// BufferInsert and BufferDelete; it is the zero Range otherwise.
type Event struct {
	Kind   Kind
	Buffer editor.BufferHandle
	Range  position.Range
}

// Queue is a FIFO of Events. Every method takes an internal mutex; per
// the editor's concurrency model, all editor-state mutation is
// serialized on the main loop, and the queue is drained exactly once
// per tick.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{}
}

// Push appends an event to the back of the queue.
func (q *Queue) Push(e Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, e)
}

// PushInsert is a convenience wrapper for the common BufferInsert case.
func (q *Queue) PushInsert(buf editor.BufferHandle, r position.Range) {
	q.Push(Event{Kind: BufferInsert, Buffer: buf, Range: r})
}

// PushDelete is a convenience wrapper for the common BufferDelete case.
func (q *Queue) PushDelete(buf editor.BufferHandle, r position.Range) {
	q.Push(Event{Kind: BufferDelete, Buffer: buf, Range: r})
}

// PushLoad records that buf finished loading from disk.
func (q *Queue) PushLoad(buf editor.BufferHandle) {
	q.Push(Event{Kind: BufferLoad, Buffer: buf})
}

// PushClose records that buf is pending removal.
func (q *Queue) PushClose(buf editor.BufferHandle) {
	q.Push(Event{Kind: BufferClose, Buffer: buf})
}

// Drain removes and returns every queued event, in issue order, leaving
// the queue empty. Call this exactly once per tick.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	drained := q.events
	q.events = nil
	return drained
}

// Len reports the number of queued, undrained events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
