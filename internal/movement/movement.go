package movement

import (
	"unicode/utf8"

	"github.com/pepperedit/core/internal/buffer"
	"github.com/pepperedit/core/internal/cursor"
	"github.com/pepperedit/core/internal/position"
)

// Kind selects how a motion affects the cursor's anchor.
type Kind uint8

const (
	// PositionAndAnchor moves the whole cursor: anchor snaps to the new
	// position, collapsing any selection.
	PositionAndAnchor Kind = iota
	// PositionOnly moves only the active end, extending the selection.
	PositionOnly
)

func lineText(content *buffer.BufferContent, line uint32) string {
	if int(line) >= content.LineCount() {
		return ""
	}
	return content.Line(line)
}

func applyKind(c cursor.Cursor, newPos position.Position, kind Kind) cursor.Cursor {
	if kind == PositionAndAnchor {
		return cursor.Cursor{Anchor: newPos, Position: newPos}
	}
	return cursor.Cursor{Anchor: c.Anchor, Position: newPos}
}

// forEachCursor runs step for every cursor under a single mutation
// guard and, when invalidateSaved is true, resets every saved column
// to the cursor's resulting column afterward.
func forEachCursor(cc *cursor.Collection, kind Kind, invalidateSaved bool, step func(c cursor.Cursor, savedColumn uint32) (position.Position, uint32)) {
	cc.WithCursors(func(g *cursor.Guard) {
		for i := 0; i < g.Len(); i++ {
			c := g.At(i)
			newPos, newSaved := step(c, g.SavedColumn(i))
			g.Set(i, applyKind(c, newPos, kind))
			g.SetSavedColumn(i, newSaved)
		}
		if invalidateSaved {
			g.InvalidateSavedColumns()
		}
	})
}

// advanceOneChar steps p forward by one grapheme cluster, crossing a
// newline if at end of line. ok is false if p is already at
// end-of-buffer.
func advanceOneChar(content *buffer.BufferContent, p position.Position) (position.Position, bool) {
	line := lineText(content, p.Line)
	if int(p.Column) < len(line) {
		return position.Position{Line: p.Line, Column: uint32(nextGraphemeBoundary(line, int(p.Column)))}, true
	}
	if int(p.Line)+1 < content.LineCount() {
		return position.Position{Line: p.Line + 1, Column: 0}, true
	}
	return p, false
}

// retreatOneChar steps p backward by one grapheme cluster, crossing to
// the end of the previous line at column 0. ok is false if p is
// already at the start of the buffer.
func retreatOneChar(content *buffer.BufferContent, p position.Position) (position.Position, bool) {
	if p.Column > 0 {
		line := lineText(content, p.Line)
		return position.Position{Line: p.Line, Column: uint32(prevGraphemeBoundary(line, int(p.Column)))}, true
	}
	if p.Line > 0 {
		prevLine := lineText(content, p.Line-1)
		return position.Position{Line: p.Line - 1, Column: uint32(len(prevLine))}, true
	}
	return p, false
}

func columnsForwardPosition(content *buffer.BufferContent, p position.Position, n int) position.Position {
	for i := 0; i < n; i++ {
		next, ok := advanceOneChar(content, p)
		if !ok {
			break
		}
		p = next
	}
	return p
}

func columnsBackwardPosition(content *buffer.BufferContent, p position.Position, n int) position.Position {
	for i := 0; i < n; i++ {
		prev, ok := retreatOneChar(content, p)
		if !ok {
			break
		}
		p = prev
	}
	return p
}

// ColumnsForward advances every cursor n grapheme clusters, crossing
// line boundaries, clamped to end-of-buffer.
func ColumnsForward(cc *cursor.Collection, content *buffer.BufferContent, n int, kind Kind) {
	forEachCursor(cc, kind, true, func(c cursor.Cursor, _ uint32) (position.Position, uint32) {
		np := columnsForwardPosition(content, c.Position, n)
		return np, np.Column
	})
}

// ColumnsBackward retreats every cursor n grapheme clusters, crossing
// line boundaries, clamped to start-of-buffer.
func ColumnsBackward(cc *cursor.Collection, content *buffer.BufferContent, n int, kind Kind) {
	forEachCursor(cc, kind, true, func(c cursor.Cursor, _ uint32) (position.Position, uint32) {
		np := columnsBackwardPosition(content, c.Position, n)
		return np, np.Column
	})
}

// LinesForward moves every cursor down n lines, restoring each
// cursor's saved virtual column and clamping it to the destination
// line's length at a character boundary.
func LinesForward(cc *cursor.Collection, content *buffer.BufferContent, n int, kind Kind) {
	forEachCursor(cc, kind, false, func(c cursor.Cursor, savedColumn uint32) (position.Position, uint32) {
		return moveLines(content, c.Position, savedColumn, n), savedColumn
	})
}

// LinesBackward moves every cursor up n lines, with the same saved
// column semantics as LinesForward.
func LinesBackward(cc *cursor.Collection, content *buffer.BufferContent, n int, kind Kind) {
	forEachCursor(cc, kind, false, func(c cursor.Cursor, savedColumn uint32) (position.Position, uint32) {
		return moveLines(content, c.Position, savedColumn, -n), savedColumn
	})
}

func moveLines(content *buffer.BufferContent, p position.Position, savedColumn uint32, delta int) position.Position {
	lineCount := int(content.LineCount())
	target := int(p.Line) + delta
	if target < 0 {
		target = 0
	}
	if target >= lineCount {
		target = lineCount - 1
	}
	return content.ClampPosition(position.Position{Line: uint32(target), Column: savedColumn})
}

// WordsForward advances every cursor n words. A step taken at the end
// of a line moves to the start of the next line; any other step moves
// past the current word and the whitespace after it, stopping at the
// start of the next word or at the end of the line.
func WordsForward(cc *cursor.Collection, content *buffer.BufferContent, n int, kind Kind) {
	forEachCursor(cc, kind, true, func(c cursor.Cursor, _ uint32) (position.Position, uint32) {
		np := c.Position
		for i := 0; i < n; i++ {
			np = wordForwardOnce(content, np)
		}
		return np, np.Column
	})
}

// WordsBackward retreats every cursor n words, mirroring WordsForward:
// a step taken at column 0 moves to the end of the previous line; any
// other step stops at the start of the previous word or at column 0.
func WordsBackward(cc *cursor.Collection, content *buffer.BufferContent, n int, kind Kind) {
	forEachCursor(cc, kind, true, func(c cursor.Cursor, _ uint32) (position.Position, uint32) {
		np := c.Position
		for i := 0; i < n; i++ {
			np = wordBackwardOnce(content, np)
		}
		return np, np.Column
	})
}

func wordForwardOnce(content *buffer.BufferContent, p position.Position) position.Position {
	line := lineText(content, p.Line)
	col := int(p.Column)

	if col >= len(line) {
		if int(p.Line)+1 < content.LineCount() {
			return position.Position{Line: p.Line + 1, Column: 0}
		}
		return p
	}

	r, size := utf8.DecodeRuneInString(line[col:])
	class := classify(r)

	if class != classWhitespace {
		if class == classOther {
			col += size
		} else {
			for col < len(line) {
				r, size := utf8.DecodeRuneInString(line[col:])
				if classify(r) != class {
					break
				}
				col += size
			}
		}
	}

	for col < len(line) {
		r, size := utf8.DecodeRuneInString(line[col:])
		if classify(r) != classWhitespace {
			break
		}
		col += size
	}

	return position.Position{Line: p.Line, Column: uint32(col)}
}

func wordBackwardOnce(content *buffer.BufferContent, p position.Position) position.Position {
	if p.Column == 0 {
		if p.Line > 0 {
			prevLine := lineText(content, p.Line-1)
			return position.Position{Line: p.Line - 1, Column: uint32(len(prevLine))}
		}
		return p
	}

	line := lineText(content, p.Line)
	col := int(p.Column)

	for col > 0 {
		r, size := utf8.DecodeLastRuneInString(line[:col])
		if classify(r) != classWhitespace {
			break
		}
		col -= size
	}

	if col == 0 {
		return position.Position{Line: p.Line, Column: 0}
	}

	r, size := utf8.DecodeLastRuneInString(line[:col])
	class := classify(r)
	if class == classOther {
		col -= size
	} else {
		for col > 0 {
			r, size := utf8.DecodeLastRuneInString(line[:col])
			if classify(r) != class {
				break
			}
			col -= size
		}
	}

	return position.Position{Line: p.Line, Column: uint32(col)}
}

// Home moves every cursor to column 0 of its line.
func Home(cc *cursor.Collection, kind Kind) {
	forEachCursor(cc, kind, true, func(c cursor.Cursor, _ uint32) (position.Position, uint32) {
		np := position.Position{Line: c.Position.Line, Column: 0}
		return np, 0
	})
}

// HomeNonWhitespace moves every cursor to the first non-whitespace
// byte of its line, or column 0 if the line is entirely whitespace.
func HomeNonWhitespace(cc *cursor.Collection, content *buffer.BufferContent, kind Kind) {
	forEachCursor(cc, kind, true, func(c cursor.Cursor, _ uint32) (position.Position, uint32) {
		line := lineText(content, c.Position.Line)
		col := 0
		for col < len(line) {
			r, size := utf8.DecodeRuneInString(line[col:])
			if classify(r) != classWhitespace {
				break
			}
			col += size
		}
		np := position.Position{Line: c.Position.Line, Column: uint32(col)}
		return np, np.Column
	})
}

// End moves every cursor to the byte length of its line.
func End(cc *cursor.Collection, content *buffer.BufferContent, kind Kind) {
	forEachCursor(cc, kind, true, func(c cursor.Cursor, _ uint32) (position.Position, uint32) {
		line := lineText(content, c.Position.Line)
		np := position.Position{Line: c.Position.Line, Column: uint32(len(line))}
		return np, np.Column
	})
}

// FirstLine moves every cursor to line 0, keeping its column (clamped).
func FirstLine(cc *cursor.Collection, content *buffer.BufferContent, kind Kind) {
	forEachCursor(cc, kind, false, func(c cursor.Cursor, savedColumn uint32) (position.Position, uint32) {
		np := content.ClampPosition(position.Position{Line: 0, Column: c.Position.Column})
		return np, savedColumn
	})
}

// LastLine moves every cursor to the last line, keeping its column
// (clamped).
func LastLine(cc *cursor.Collection, content *buffer.BufferContent, kind Kind) {
	forEachCursor(cc, kind, false, func(c cursor.Cursor, savedColumn uint32) (position.Position, uint32) {
		last := uint32(content.LineCount() - 1)
		np := content.ClampPosition(position.Position{Line: last, Column: c.Position.Column})
		return np, savedColumn
	})
}
