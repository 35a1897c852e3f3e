package picker

import "testing"

type stubWords []string

func (s stubWords) WordCount() int      { return len(s) }
func (s stubWords) WordAt(i int) string { return s[i] }

func TestFilterOrdersByScoreDescending(t *testing.T) {
	p := New(stubWords{"foobar", "fb", "zzz"}, nil)
	p.Filter("fb")

	results := p.Filtered()
	if len(results) != 2 {
		t.Fatalf("Filtered() len = %d, want 2", len(results))
	}
	if results[0].Score < results[1].Score {
		t.Errorf("results not sorted descending: %v", results)
	}
}

func TestFilterExactLengthBeatsEqualFuzzyScore(t *testing.T) {
	// At 20 runes or more neither text earns a length bonus, so both score
	// the same apart from the exact-length bonus. The longer text is added
	// first: only that bonus can put the exact-length one ahead of it.
	p := New(nil, nil)
	p.AddCustom("abcdefghijklmnopqrstu")
	p.AddCustom("abcdefghijklmnopqrst")
	p.Filter("abcdefghijklmnopqrst")

	results := p.Filtered()
	if len(results) != 2 {
		t.Fatalf("Filtered() len = %d, want 2", len(results))
	}
	if results[0].Source.Index != 1 {
		t.Errorf("expected exact-length match to sort first, got source %+v", results[0].Source)
	}
	if results[0].Score != results[1].Score+1 {
		t.Errorf("scores = %d, %d, want them to differ only by the exact-length bonus", results[0].Score, results[1].Score)
	}
}

func TestClearCustomReusesSlots(t *testing.T) {
	p := New(nil, nil)
	p.AddCustom("a")
	p.AddCustom("b")
	p.ClearCustom()
	p.AddCustom("c")

	if p.customLen != 1 {
		t.Fatalf("customLen = %d, want 1", p.customLen)
	}
	if cap(p.customSlots) < 2 {
		t.Errorf("expected backing slab retained, cap = %d", cap(p.customSlots))
	}
	if p.customSlots[0] != "c" {
		t.Errorf("expected slot 0 reused, got %q", p.customSlots[0])
	}
}

func TestMoveCursorHysteresisAtEnd(t *testing.T) {
	p := New(nil, nil)
	p.filtered = []Match{{Score: 3}, {Score: 2}, {Score: 1}}
	p.cursor = 2

	p.MoveCursor(1)
	if p.cursor != 2 {
		t.Fatalf("first overshoot should park at edge, cursor = %d", p.cursor)
	}
	p.MoveCursor(1)
	if p.cursor != 0 {
		t.Fatalf("second overshoot should wrap to 0, cursor = %d", p.cursor)
	}
}

func TestMoveCursorHysteresisAtStart(t *testing.T) {
	p := New(nil, nil)
	p.filtered = []Match{{Score: 3}, {Score: 2}, {Score: 1}}
	p.cursor = 0

	p.MoveCursor(-1)
	if p.cursor != 0 {
		t.Fatalf("first undershoot should park at edge, cursor = %d", p.cursor)
	}
	p.MoveCursor(-1)
	if p.cursor != 2 {
		t.Fatalf("second undershoot should wrap to end, cursor = %d", p.cursor)
	}
}

func TestUpdateScrollSaturatesWhenListShorterThanViewport(t *testing.T) {
	p := New(nil, nil)
	p.filtered = []Match{{Score: 1}, {Score: 1}}
	p.cursor = 1

	p.UpdateScroll(10)
	if p.Scroll() != 0 {
		t.Errorf("Scroll() = %d, want 0 when list shorter than viewport", p.Scroll())
	}
}

func TestUpdateScrollKeepsCursorVisible(t *testing.T) {
	p := New(nil, nil)
	p.filtered = make([]Match, 20)
	p.cursor = 15

	p.UpdateScroll(5)
	if p.Scroll() != 11 {
		t.Errorf("Scroll() = %d, want 11", p.Scroll())
	}
}
