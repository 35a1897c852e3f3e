package movement

import (
	"testing"

	"github.com/pepperedit/core/internal/buffer"
	"github.com/pepperedit/core/internal/cursor"
	"github.com/pepperedit/core/internal/position"
)

func TestColumnsForwardCrossesLinesAndClamps(t *testing.T) {
	content := buffer.FromText("ab\nc e\nefgh\ni k\nlm")
	cc := cursor.New(position.Position{Line: 2, Column: 2})

	ColumnsForward(cc, content, 7, PositionAndAnchor)
	if got := cc.Main().Position; got != (position.Position{Line: 4, Column: 0}) {
		t.Fatalf("after ColumnsForward(7): got %v, want (4,0)", got)
	}

	ColumnsForward(cc, content, 999, PositionAndAnchor)
	if got := cc.Main().Position; got != (position.Position{Line: 4, Column: 2}) {
		t.Fatalf("after ColumnsForward(999): got %v, want (4,2)", got)
	}
}

func TestWordsForwardSameLine(t *testing.T) {
	content := buffer.FromText("ab\nc e\nefgh\ni k\nlm")
	cc := cursor.New(position.Position{Line: 2, Column: 0})

	WordsForward(cc, content, 1, PositionAndAnchor)
	if got := cc.Main().Position; got != (position.Position{Line: 2, Column: 4}) {
		t.Fatalf("got %v, want (2,4)", got)
	}
}

func TestWordsForwardSkipsLeadingWhitespace(t *testing.T) {
	content := buffer.FromText("123\n  abc def\nghi")
	cc := cursor.New(position.Position{Line: 1, Column: 0})

	WordsForward(cc, content, 1, PositionAndAnchor)
	if got := cc.Main().Position; got != (position.Position{Line: 1, Column: 2}) {
		t.Fatalf("got %v, want (1,2)", got)
	}
}

func TestColumnsBackwardCrossesToPreviousLineEnd(t *testing.T) {
	content := buffer.FromText("ab\ncd")
	cc := cursor.New(position.Position{Line: 1, Column: 0})

	ColumnsBackward(cc, content, 1, PositionAndAnchor)
	if got := cc.Main().Position; got != (position.Position{Line: 0, Column: 2}) {
		t.Fatalf("got %v, want (0,2)", got)
	}
}

func TestLinesForwardRestoresSavedColumn(t *testing.T) {
	content := buffer.FromText("longer line\nhi\nlonger line")
	cc := cursor.New(position.Position{Line: 0, Column: 8})
	cc.WithCursors(func(g *cursor.Guard) { g.SetSavedColumn(0, 8) })

	LinesForward(cc, content, 1, PositionAndAnchor)
	if got := cc.Main().Position; got != (position.Position{Line: 1, Column: 2}) {
		t.Fatalf("line 1 clamp: got %v, want (1,2)", got)
	}

	LinesForward(cc, content, 1, PositionAndAnchor)
	if got := cc.Main().Position; got != (position.Position{Line: 2, Column: 8}) {
		t.Fatalf("saved column restored on line 2: got %v, want (2,8)", got)
	}
}

func TestHomeAndEnd(t *testing.T) {
	content := buffer.FromText("  abc")
	cc := cursor.New(position.Position{Line: 0, Column: 4})

	HomeNonWhitespace(cc, content, PositionAndAnchor)
	if got := cc.Main().Position; got != (position.Position{Line: 0, Column: 2}) {
		t.Fatalf("HomeNonWhitespace: got %v, want (0,2)", got)
	}

	Home(cc, PositionAndAnchor)
	if got := cc.Main().Position; got != (position.Position{Line: 0, Column: 0}) {
		t.Fatalf("Home: got %v, want (0,0)", got)
	}

	End(cc, content, PositionAndAnchor)
	if got := cc.Main().Position; got != (position.Position{Line: 0, Column: 5}) {
		t.Fatalf("End: got %v, want (0,5)", got)
	}
}

func TestFirstLastLine(t *testing.T) {
	content := buffer.FromText("aaa\nbb\nccccc")
	cc := cursor.New(position.Position{Line: 1, Column: 1})

	LastLine(cc, content, PositionAndAnchor)
	if got := cc.Main().Position; got != (position.Position{Line: 2, Column: 1}) {
		t.Fatalf("LastLine: got %v, want (2,1)", got)
	}

	FirstLine(cc, content, PositionAndAnchor)
	if got := cc.Main().Position; got != (position.Position{Line: 0, Column: 1}) {
		t.Fatalf("FirstLine: got %v, want (0,1)", got)
	}
}

func TestPositionOnlyExtendsSelection(t *testing.T) {
	content := buffer.FromText("hello world")
	cc := cursor.New(position.Position{Line: 0, Column: 0})

	ColumnsForward(cc, content, 5, PositionOnly)
	main := cc.Main()
	if !main.Anchor.Equal(position.Position{Line: 0, Column: 0}) {
		t.Errorf("anchor should stay put for PositionOnly, got %v", main.Anchor)
	}
	if main.Position.Column != 5 {
		t.Errorf("position.Column = %d, want 5", main.Position.Column)
	}
}
