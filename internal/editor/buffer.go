package editor

import (
	"io"
	"os"

	"github.com/pepperedit/core/internal/buffer"
	"github.com/pepperedit/core/internal/history"
	"github.com/pepperedit/core/internal/position"
)

// Buffer pairs line-oriented content with its edit history and the
// metadata needed to track whether it differs from what is on disk.
type Buffer struct {
	content    *buffer.BufferContent
	history    *history.History
	path       string
	dirty      bool
	revisionID RevisionID
}

// New returns an empty, clean buffer with no backing path.
func New() *Buffer {
	return &Buffer{
		content:    buffer.New(),
		history:    history.New(),
		revisionID: NewRevisionID(),
	}
}

// NewFromText returns a buffer seeded with s, not backed by any path.
// The content is recorded as loaded, not typed: it starts clean, with no
// undo history of its own.
func NewFromText(s string) *Buffer {
	return &Buffer{
		content:    buffer.FromText(s),
		history:    history.New(),
		revisionID: NewRevisionID(),
	}
}

// NewFromReader loads content from r and associates it with path. Per the
// file I/O contract, loading reads the whole file and inserts it at the
// origin of an empty buffer; the result is clean.
func NewFromReader(path string, r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewFromText(string(data)).withPath(path), nil
}

// NewFromFile opens path and loads its contents, per the file I/O
// contract (NewFromReader).
func NewFromFile(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return NewFromReader(path, f)
}

func (b *Buffer) withPath(path string) *Buffer {
	b.path = path
	return b
}

// Path returns the buffer's backing file path, or "" for a scratch buffer.
func (b *Buffer) Path() string {
	return b.path
}

// SetPath sets the buffer's backing file path.
func (b *Buffer) SetPath(path string) {
	b.path = path
}

// Content exposes the underlying line content for read access.
func (b *Buffer) Content() *buffer.BufferContent {
	return b.content
}

// Dirty reports whether the buffer has unsaved changes.
func (b *Buffer) Dirty() bool {
	return b.dirty
}

// RevisionID returns the buffer's current revision.
func (b *Buffer) RevisionID() RevisionID {
	return b.revisionID
}

func (b *Buffer) bumpRevision() {
	b.revisionID = NewRevisionID()
}

// InsertText inserts text at pos, records it in history under
// cursorIndex, and marks the buffer dirty. It returns the range the
// inserted text now occupies.
func (b *Buffer) InsertText(pos position.Position, text string, cursorIndex uint8) position.Range {
	r := b.content.InsertText(pos, text)
	b.history.AddEdit(history.Insert, r, text, cursorIndex)
	b.dirty = true
	b.bumpRevision()
	return r
}

// DeleteText deletes r, records it in history under cursorIndex, and
// marks the buffer dirty. It returns the text removed.
func (b *Buffer) DeleteText(r position.Range, cursorIndex uint8) string {
	from := b.content.ClampPosition(r.From)
	to := b.content.ClampPosition(r.To)
	clamped := position.Range{From: from, To: to}
	if !clamped.Valid() {
		clamped.From, clamped.To = clamped.To, clamped.From
	}
	deleted := b.content.DeleteRange(clamped)
	b.history.AddEdit(history.Delete, clamped, deleted, cursorIndex)
	b.dirty = true
	b.bumpRevision()
	return deleted
}

// CommitEdits closes the current undo group, so the next edit starts a new
// one instead of coalescing into the last.
func (b *Buffer) CommitEdits() {
	b.history.CommitEdits()
}

// Undo reverses the most recent undo group and returns the ranges it
// affected, for view fan-out. ErrNothingToUndo if there is nothing to undo.
func (b *Buffer) Undo() ([]position.Range, error) {
	edits, err := b.history.UndoEdits()
	if err != nil {
		return nil, err
	}
	return b.applyAll(edits), nil
}

// Redo replays the most recently undone group and returns the ranges it
// affected. ErrNothingToRedo if there is nothing to redo.
func (b *Buffer) Redo() ([]position.Range, error) {
	edits, err := b.history.RedoEdits()
	if err != nil {
		return nil, err
	}
	return b.applyAll(edits), nil
}

func (b *Buffer) applyAll(edits []history.EditInternal) []position.Range {
	affected := make([]position.Range, 0, len(edits))
	for _, e := range edits {
		affected = append(affected, b.applyEdit(e))
	}
	if len(edits) > 0 {
		b.dirty = true
		b.bumpRevision()
	}
	return affected
}

func (b *Buffer) applyEdit(e history.EditInternal) position.Range {
	if e.Kind == history.Insert {
		return b.content.InsertText(e.Range.From, e.Text)
	}
	b.content.DeleteRange(e.Range)
	return e.Range
}

// Write writes the buffer's content to w and clears the dirty bit.
func (b *Buffer) Write(w io.Writer) error {
	if err := b.content.Write(w); err != nil {
		return err
	}
	b.dirty = false
	return nil
}

// MarkClean clears the dirty bit without writing, e.g. after a caller
// persists the content through its own I/O path.
func (b *Buffer) MarkClean() {
	b.dirty = false
}
