package cursor

import "github.com/pepperedit/core/internal/position"

// Cursor is an (anchor, position) pair. The selection is the range between
// them; Position is the end the user is actively moving.
type Cursor struct {
	Anchor   position.Position
	Position position.Position
}

// AtPosition returns a cursor with no selection, anchored at p.
func AtPosition(p position.Position) Cursor {
	return Cursor{Anchor: p, Position: p}
}

// Selection returns the cursor's selection as a normalized range.
func (c Cursor) Selection() position.Range {
	return position.Between(c.Anchor, c.Position)
}

// IsEmpty reports whether the cursor has no selection extent.
func (c Cursor) IsEmpty() bool {
	return c.Anchor.Equal(c.Position)
}

// Forward reports whether Position is at or after Anchor, i.e. the
// selection grew rightward/downward from where it started.
func (c Cursor) Forward() bool {
	return !c.Position.Less(c.Anchor)
}

// TranslateInsert applies an insertion's position shift to both ends.
func (c Cursor) TranslateInsert(r position.Range) Cursor {
	return Cursor{Anchor: c.Anchor.TranslateInsert(r), Position: c.Position.TranslateInsert(r)}
}

// TranslateDelete applies a deletion's position shift to both ends.
func (c Cursor) TranslateDelete(r position.Range) Cursor {
	return Cursor{Anchor: c.Anchor.TranslateDelete(r), Position: c.Position.TranslateDelete(r)}
}

// Collapsed returns a cursor with Anchor pulled to Position, discarding
// any selection.
func (c Cursor) Collapsed() Cursor {
	return Cursor{Anchor: c.Position, Position: c.Position}
}
