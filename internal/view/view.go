package view

import (
	"path/filepath"

	"github.com/pepperedit/core/internal/cursor"
	"github.com/pepperedit/core/internal/editor"
	"github.com/pepperedit/core/internal/position"
)

// ClientID identifies the UI client a view belongs to (e.g. a terminal
// session in the client/server split).
type ClientID uint32

// ViewHandle is a dense opaque index into a Registry's slab.
type ViewHandle uint32

// View is a client's window onto a buffer: which buffer it shows, and
// the cursors the client has placed in it.
type View struct {
	Client  ClientID
	Buffer  editor.BufferHandle
	Cursors *cursor.Collection
}

type bufClientKey struct {
	client ClientID
	buffer editor.BufferHandle
}

// Registry stores views in a dense slab with free-list reuse and
// indexes them by (client, buffer) for buffer_view_handle_from_buffer_handle-style
// lookups, and fans buffer edits out to every view on the edited
// buffer.
type Registry struct {
	slots     []*View
	freeList  []ViewHandle
	byBufClnt map[bufClientKey]ViewHandle
}

// NewRegistry returns an empty view registry.
func NewRegistry() *Registry {
	return &Registry{byBufClnt: make(map[bufClientKey]ViewHandle)}
}

// Add stores v, reusing a freed slot before growing the slab.
func (reg *Registry) Add(v *View) ViewHandle {
	var h ViewHandle
	if n := len(reg.freeList); n > 0 {
		h = reg.freeList[n-1]
		reg.freeList = reg.freeList[:n-1]
		reg.slots[h] = v
	} else {
		h = ViewHandle(len(reg.slots))
		reg.slots = append(reg.slots, v)
	}
	reg.byBufClnt[bufClientKey{v.Client, v.Buffer}] = h
	return h
}

// Get returns the view at h, or (nil, false) if freed or out of range.
func (reg *Registry) Get(h ViewHandle) (*View, bool) {
	if int(h) >= len(reg.slots) {
		return nil, false
	}
	v := reg.slots[h]
	return v, v != nil
}

// Remove frees h's slot immediately. Views carry no cross-references
// that require deferred removal the way buffer handles do.
func (reg *Registry) Remove(h ViewHandle) {
	if int(h) >= len(reg.slots) || reg.slots[h] == nil {
		return
	}
	v := reg.slots[h]
	delete(reg.byBufClnt, bufClientKey{v.Client, v.Buffer})
	reg.slots[h] = nil
	reg.freeList = append(reg.freeList, h)
}

// ViewHandleFromBufferHandle finds the existing view binding (client,
// buffer), or creates a fresh one with a single cursor at the origin.
func (reg *Registry) ViewHandleFromBufferHandle(client ClientID, buf editor.BufferHandle) ViewHandle {
	key := bufClientKey{client, buf}
	if h, ok := reg.byBufClnt[key]; ok {
		return h
	}
	v := &View{Client: client, Buffer: buf, Cursors: cursor.New(position.Zero)}
	return reg.Add(v)
}

// ViewHandleFromPath de-duplicates by canonical path (absolute and
// cleaned, via filepath.Abs): if a live buffer already backs path, it
// opens (or reuses) a view on it; otherwise it loads path into a new
// buffer first. When pos is non-nil the view's first cursor (the only
// cursor of a newly created view) is moved there, clamped to the loaded
// content.
func (reg *Registry) ViewHandleFromPath(client ClientID, buffers *editor.Collection, path string, pos *position.Position) (ViewHandle, error) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	buf, ok := buffers.FindByPath(path)
	if !ok {
		b, err := editor.NewFromFile(path)
		if err != nil {
			return 0, err
		}
		buf = buffers.Add(b)
	}

	h := reg.ViewHandleFromBufferHandle(client, buf)

	if pos != nil {
		b, _ := buffers.Get(buf)
		clamped := b.Content().ClampPosition(*pos)
		v, _ := reg.Get(h)
		v.Cursors.WithCursors(func(g *cursor.Guard) {
			g.Set(0, cursor.AtPosition(clamped))
		})
	}

	return h, nil
}

// OnBufferInsertText applies an insertion's position translation to
// every cursor (anchor and position) of every live view on buf.
func (reg *Registry) OnBufferInsertText(buf editor.BufferHandle, r position.Range) {
	for _, v := range reg.slots {
		if v == nil || v.Buffer != buf {
			continue
		}
		v.Cursors.WithCursors(func(g *cursor.Guard) {
			for i := 0; i < g.Len(); i++ {
				g.Set(i, g.At(i).TranslateInsert(r))
			}
		})
	}
}

// OnBufferDeleteText applies a deletion's position translation to
// every cursor (anchor and position) of every live view on buf.
func (reg *Registry) OnBufferDeleteText(buf editor.BufferHandle, r position.Range) {
	for _, v := range reg.slots {
		if v == nil || v.Buffer != buf {
			continue
		}
		v.Cursors.WithCursors(func(g *cursor.Guard) {
			for i := 0; i < g.Len(); i++ {
				g.Set(i, g.At(i).TranslateDelete(r))
			}
		})
	}
}
