package history

import (
	"sync"

	"github.com/pepperedit/core/internal/position"
)

// EditKind distinguishes an insertion from a deletion.
type EditKind uint8

const (
	Insert EditKind = iota
	Delete
)

// Invert returns the opposite kind.
func (k EditKind) Invert() EditKind {
	if k == Insert {
		return Delete
	}
	return Insert
}

// String implements fmt.Stringer.
func (k EditKind) String() string {
	if k == Insert {
		return "insert"
	}
	return "delete"
}

// EditInternal is a single recorded edit. Range is the span the edit's
// Text occupies whenever that text is present in the buffer: for an
// Insert, the span the new text now fills; for a Delete, the span the
// removed text used to fill. That symmetry is what lets Undo flip Kind
// in place without touching Range or Text.
type EditInternal struct {
	Kind        EditKind
	Range       position.Range
	Text        string
	CursorIndex uint8
}

func (e EditInternal) inverted() EditInternal {
	e.Kind = e.Kind.Invert()
	return e
}

type groupSpan struct {
	start, end int
}

// History is an append-only edit log partitioned into undo groups.
//
// State is either IterIndex (a cursor into groups, pointing at the group
// redo would replay next) or an open InsertGroup assembling edits[openGroup:].
// The two states are distinguished by openGroup: -1 means IterIndex.
type History struct {
	mu        sync.Mutex
	edits     []EditInternal
	groups    []groupSpan
	openGroup int
	iterIndex int
}

// New returns an empty history, ready to record edits.
func New() *History {
	return &History{openGroup: -1}
}

// AddEdit appends an edit, opening a group if none is open. If the edit
// merges with the last edit in the currently open group (same cursor,
// abutting or overlapping range per the coalescing table), no new entry
// is recorded; the last entry is mutated in place instead. Adding an edit
// while positioned mid-history (not at the tip) discards the redo tail.
func (h *History) AddEdit(kind EditKind, r position.Range, text string, cursorIndex uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.openGroup == -1 {
		h.groups = h.groups[:h.iterIndex]
		retained := 0
		if h.iterIndex > 0 {
			retained = h.groups[h.iterIndex-1].end
		}
		h.edits = h.edits[:retained]
		h.openGroup = len(h.edits)
	}

	if n := len(h.edits); n > h.openGroup {
		last := &h.edits[n-1]
		if last.CursorIndex == cursorIndex && tryMerge(last, kind, r, text) {
			return
		}
	}

	h.edits = append(h.edits, EditInternal{Kind: kind, Range: r, Text: text, CursorIndex: cursorIndex})
}

// tryMerge attempts to fold (kind, r, text) into last. It returns whether
// the merge applied. Each case below is one coalescing rule; the
// Insert->Delete rules live in tryMergeInsertDelete. AddEdit has already
// checked that both edits come from the same cursor.
func tryMerge(last *EditInternal, kind EditKind, r position.Range, text string) bool {
	switch {
	case last.Kind == Insert && kind == Insert && r.From == last.Range.To:
		last.Range.To = r.To
		last.Text += text
		return true

	case last.Kind == Insert && kind == Insert && r.From == last.Range.From:
		last.Range.To = last.Range.To.TranslateInsert(r)
		last.Text = text + last.Text
		return true

	case last.Kind == Delete && kind == Delete && r.From == last.Range.From:
		last.Range.To = extendBySpan(last.Range.To, r)
		last.Text += text
		return true

	case last.Kind == Delete && kind == Delete && r.To == last.Range.From:
		last.Range.From = r.From
		last.Text = text + last.Text
		return true

	case last.Kind == Insert && kind == Delete:
		return tryMergeInsertDelete(last, r, text)
	}
	return false
}

// extendBySpan applies the (line, column) delta that r.From->r.To
// represents to base, without requiring base and r to share a coordinate
// frame. It is used when a Delete extends a prior Delete: the new range
// is expressed in the document as already shrunk by the prior deletion,
// while base (the prior deletion's far edge) is expressed in the document
// as it stood before that deletion. Both describe the same physical
// point, so the span length between r.From and r.To is exactly the amount
// base needs to grow by.
func extendBySpan(base position.Position, r position.Range) position.Position {
	lineDelta := r.To.Line - r.From.Line
	if lineDelta == 0 {
		colDelta := int64(r.To.Column) - int64(r.From.Column)
		return position.Position{Line: base.Line, Column: uint32(int64(base.Column) + colDelta)}
	}
	return position.Position{Line: base.Line + lineDelta, Column: r.To.Column}
}

// tryMergeInsertDelete handles the four Insert->Delete coalescing cases.
// All four require the deleted text to match the overlapping part of the
// insert byte-for-byte; otherwise the edits do not merge.
func tryMergeInsertDelete(last *EditInternal, r position.Range, text string) bool {
	// Deleted prefix matches the insert's start.
	if r.From == last.Range.From && r.To.LessEqual(last.Range.To) {
		n := len(text)
		if n <= len(last.Text) && last.Text[:n] == text {
			last.Text = last.Text[n:]
			last.Range.To = last.Range.To.TranslateDelete(r)
			return true
		}
	}

	// Deleted suffix matches the insert's end.
	if r.To == last.Range.To && last.Range.From.LessEqual(r.From) {
		n := len(text)
		if n <= len(last.Text) && last.Text[len(last.Text)-n:] == text {
			last.Text = last.Text[:len(last.Text)-n]
			last.Range.To = r.From
			return true
		}
	}

	// Deletion strictly larger on the right: consumes the whole insert plus
	// a trailing span of text that predates the insert.
	if r.From == last.Range.From && last.Range.To.LessEqual(r.To) {
		n := len(last.Text)
		if n <= len(text) && text[:n] == last.Text {
			last.Kind = Delete
			last.Text = text[n:]
			last.Range = position.Range{From: last.Range.From, To: r.To.TranslateDelete(last.Range)}
			return true
		}
	}

	// Deletion strictly larger on the left: mirror of the above.
	if r.To == last.Range.To && r.From.LessEqual(last.Range.From) {
		n := len(last.Text)
		if n <= len(text) && text[len(text)-n:] == last.Text {
			last.Kind = Delete
			last.Text = text[:len(text)-n]
			last.Range = position.Range{From: r.From, To: last.Range.From}
			return true
		}
	}

	return false
}

// CommitEdits closes the currently open group, if any, appending its span
// to the group list and moving the iterator past it. A commit with no
// pending edits is a no-op.
func (h *History) CommitEdits() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.commitLocked()
}

func (h *History) commitLocked() {
	if h.openGroup == -1 {
		return
	}
	if len(h.edits) > h.openGroup {
		h.groups = append(h.groups, groupSpan{start: h.openGroup, end: len(h.edits)})
	}
	h.openGroup = -1
	h.iterIndex = len(h.groups)
}

// UndoEdits commits any open group, then steps the iterator back one group
// and returns that group's edits in reverse order with Kind flipped, ready
// to apply against a buffer to undo it. It returns ErrNothingToUndo if
// there is no group to undo.
func (h *History) UndoEdits() ([]EditInternal, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.commitLocked()

	if h.iterIndex == 0 {
		return nil, ErrNothingToUndo
	}
	h.iterIndex--
	span := h.groups[h.iterIndex]

	out := make([]EditInternal, 0, span.end-span.start)
	for i := span.end - 1; i >= span.start; i-- {
		out = append(out, h.edits[i].inverted())
	}
	return out, nil
}

// RedoEdits commits any open group, then returns the next group's edits
// in forward order with Kind unchanged and advances the iterator. It
// returns ErrNothingToRedo if there is no group to redo.
func (h *History) RedoEdits() ([]EditInternal, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.commitLocked()

	if h.iterIndex >= len(h.groups) {
		return nil, ErrNothingToRedo
	}
	span := h.groups[h.iterIndex]
	h.iterIndex++

	out := make([]EditInternal, span.end-span.start)
	copy(out, h.edits[span.start:span.end])
	return out, nil
}

// CanUndo reports whether UndoEdits would succeed.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.openGroup != -1 && len(h.edits) > h.openGroup {
		return true
	}
	return h.iterIndex > 0
}



// CanRedo reports whether RedoEdits would succeed.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.iterIndex < len(h.groups)
}

// Clear discards all recorded edits and groups.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.edits = nil
	h.groups = nil
	h.openGroup = -1
	h.iterIndex = 0
}

// Checkpoint marks a point in the undo stack to later return to with
// UndoToCheckpoint. Not part of the edit-coalescing model itself; a thin
// convenience for "undo everything since I started this macro."
type Checkpoint struct {
	groupIndex int
}

// CreateCheckpoint commits any open group and records the current position.
func (h *History) CreateCheckpoint() Checkpoint {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.commitLocked()
	return Checkpoint{groupIndex: h.iterIndex}
}

// UndoToCheckpoint returns the edits (in undo order, across as many
// UndoEdits-shaped batches as needed) to unwind every group committed
// since cp. The caller applies each returned batch to its buffer in order.
func (h *History) UndoToCheckpoint(cp Checkpoint) ([][]EditInternal, error) {
	var batches [][]EditInternal
	for {
		h.mu.Lock()
		reached := h.iterIndex <= cp.groupIndex
		h.mu.Unlock()
		if reached {
			break
		}
		batch, err := h.UndoEdits()
		if err != nil {
			return batches, err
		}
		batches = append(batches, batch)
	}
	return batches, nil
}
