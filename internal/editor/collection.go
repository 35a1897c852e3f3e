package editor

import "sync"

// BufferHandle is a dense opaque index into a BufferCollection's slab.
// Equality and ordering are by raw index.
type BufferHandle uint32

// Collection stores buffers in a dense slab with free-list reuse. Removal
// is deferred: DeferRemove marks a slot but Get continues to resolve it
// until DrainRemovals runs, so events already queued against the handle
// stay valid.
type Collection struct {
	mu             sync.Mutex
	slots          []*Buffer
	freeList       []BufferHandle
	pendingRemoval []BufferHandle
}

// NewCollection returns an empty buffer collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Add stores b, reusing a freed slot before growing the slab.
func (c *Collection) Add(b *Buffer) BufferHandle {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n := len(c.freeList); n > 0 {
		h := c.freeList[n-1]
		c.freeList = c.freeList[:n-1]
		c.slots[h] = b
		return h
	}

	h := BufferHandle(len(c.slots))
	c.slots = append(c.slots, b)
	return h
}

// Get returns the buffer at h, or (nil, false) if h is out of range or its
// slot has been freed.
func (c *Collection) Get(h BufferHandle) (*Buffer, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if int(h) >= len(c.slots) {
		return nil, false
	}
	b := c.slots[h]
	return b, b != nil
}

// DeferRemove marks h for removal at the next DrainRemovals. The slot
// keeps resolving through Get until then.
func (c *Collection) DeferRemove(h BufferHandle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingRemoval = append(c.pendingRemoval, h)
}

// DrainRemovals frees every slot marked by DeferRemove since the last
// drain and returns them to the free list. Call this once per tick, after
// the event queue has been drained.
func (c *Collection) DrainRemovals() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, h := range c.pendingRemoval {
		if int(h) < len(c.slots) && c.slots[h] != nil {
			c.slots[h] = nil
			c.freeList = append(c.freeList, h)
		}
	}
	c.pendingRemoval = c.pendingRemoval[:0]
}

// Iter returns the handles of every live (non-freed) slot, in slab order.
func (c *Collection) Iter() []BufferHandle {
	c.mu.Lock()
	defer c.mu.Unlock()

	handles := make([]BufferHandle, 0, len(c.slots))
	for i, b := range c.slots {
		if b != nil {
			handles = append(handles, BufferHandle(i))
		}
	}
	return handles
}

// FindByPath returns the handle of the buffer backed by path, if any live
// buffer has it.
func (c *Collection) FindByPath(path string) (BufferHandle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, b := range c.slots {
		if b != nil && b.Path() == path {
			return BufferHandle(i), true
		}
	}
	return 0, false
}
