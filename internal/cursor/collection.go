package cursor

import (
	"sort"
	"sync"

	"github.com/pepperedit/core/internal/position"
)

// Collection is a sorted, non-overlapping set of cursors with one cursor
// designated main, plus a parallel saved-column scratch vector used by
// vertical motion.
type Collection struct {
	mu           sync.Mutex
	cursors      []Cursor
	savedColumns []uint32
	mainIndex    uint32
}

// New returns a collection holding a single cursor at p.
func New(p position.Position) *Collection {
	c := AtPosition(p)
	return &Collection{
		cursors:      []Cursor{c},
		savedColumns: []uint32{c.Position.Column},
	}
}

// Len returns the number of cursors.
func (cc *Collection) Len() int {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return len(cc.cursors)
}

// All returns a copy of every cursor, in sorted order.
func (cc *Collection) All() []Cursor {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	out := make([]Cursor, len(cc.cursors))
	copy(out, cc.cursors)
	return out
}

// Main returns the main cursor.
func (cc *Collection) Main() Cursor {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.cursors[cc.mainIndex]
}

// MainIndex returns the index of the main cursor.
func (cc *Collection) MainIndex() int {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return int(cc.mainIndex)
}

// Guard is the scoped exclusive handle WithCursors hands to its callback.
// Cursors may be freely added, mutated, or cleared through it; the
// collection is not re-sorted or merged until the guard's callback
// returns.
type Guard struct {
	cc *Collection
}

// Len returns the current cursor count.
func (g *Guard) Len() int {
	return len(g.cc.cursors)
}

// At returns the cursor at index i.
func (g *Guard) At(i int) Cursor {
	return g.cc.cursors[i]
}

// Set overwrites the cursor at index i.
func (g *Guard) Set(i int, c Cursor) {
	g.cc.cursors[i] = c
}

// Add appends a new cursor, inheriting its own position as its saved
// column.
func (g *Guard) Add(c Cursor) {
	g.cc.cursors = append(g.cc.cursors, c)
	g.cc.savedColumns = append(g.cc.savedColumns, c.Position.Column)
}

// Clear replaces every cursor with a single cursor, keep.
func (g *Guard) Clear(keep Cursor) {
	g.cc.cursors = []Cursor{keep}
	g.cc.savedColumns = []uint32{keep.Position.Column}
}

// SavedColumn returns the saved virtual column for cursor i.
func (g *Guard) SavedColumn(i int) uint32 {
	return g.cc.savedColumns[i]
}

// SetSavedColumn overwrites the saved virtual column for cursor i.
func (g *Guard) SetSavedColumn(i int, col uint32) {
	g.cc.savedColumns[i] = col
}

// InvalidateSavedColumns resets every cursor's saved column to its current
// column. Call this after any horizontal motion.
func (g *Guard) InvalidateSavedColumns() {
	for i, c := range g.cc.cursors {
		g.cc.savedColumns[i] = c.Position.Column
	}
}

// WithCursors opens a mutation guard, runs fn against it, and on return
// re-sorts cursors by Position, merges cursors whose selections touch or
// overlap, and re-identifies the main cursor by the position it held
// before fn ran (falling back to index 0 if that position no longer
// matches any cursor, e.g. the main cursor was merged away).
func (cc *Collection) WithCursors(fn func(g *Guard)) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	mainPos := cc.cursors[cc.mainIndex].Position
	fn(&Guard{cc: cc})
	cc.release(mainPos)
}

type cursorSlot struct {
	cursor      Cursor
	savedColumn uint32
}

func (cc *Collection) release(mainPos position.Position) {
	slots := make([]cursorSlot, len(cc.cursors))
	for i := range cc.cursors {
		slots[i] = cursorSlot{cursor: cc.cursors[i], savedColumn: cc.savedColumns[i]}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].cursor.Position.Less(slots[j].cursor.Position)
	})

	merged := make([]cursorSlot, 0, len(slots))
	for _, s := range slots {
		if len(merged) == 0 {
			merged = append(merged, s)
			continue
		}
		last := &merged[len(merged)-1]
		lastSel := last.cursor.Selection()
		sel := s.cursor.Selection()
		if sel.From.LessEqual(lastSel.To) {
			from := position.Min(lastSel.From, sel.From)
			to := position.Max(lastSel.To, sel.To)
			if last.cursor.Forward() {
				last.cursor = Cursor{Anchor: from, Position: to}
			} else {
				last.cursor = Cursor{Anchor: to, Position: from}
			}
			continue
		}
		merged = append(merged, s)
	}

	cc.cursors = make([]Cursor, len(merged))
	cc.savedColumns = make([]uint32, len(merged))
	for i, s := range merged {
		cc.cursors[i] = s.cursor
		cc.savedColumns[i] = s.savedColumn
	}

	cc.mainIndex = 0
	for i, c := range cc.cursors {
		if c.Position.Equal(mainPos) {
			cc.mainIndex = uint32(i)
			break
		}
	}
}
