package picker

import "sort"

// SourceKind tags which backing list a candidate came from.
type SourceKind uint8

const (
	Custom SourceKind = iota
	WordDatabase
	Command
)

// Source identifies a single candidate: which list it came from, and
// its index within that list.
type Source struct {
	Kind  SourceKind
	Index int
}

// Match is a scored candidate in the filtered result set.
type Match struct {
	Source Source
	Score  int64
}

// WordSource is the opaque word database the picker queries candidate
// text from; the picker has no notion of how the word list is built.
type WordSource interface {
	WordCount() int
	WordAt(i int) string
}

// CommandSource is the builtin command table, queried the same way as
// WordSource.
type CommandSource interface {
	CommandCount() int
	CommandAt(i int) string
}

// Picker holds a fuzzy-filtered candidate list: a stable slab of
// custom entries (reused by slot index so filtering never reallocates
// it), optional word and command sources, the current filtered
// result, and cursor/scroll state.
type Picker struct {
	customSlots []string
	customLen   int

	words    WordSource
	commands CommandSource

	filtered []Match
	cursor   int
	atEdge   bool
	scroll   int
}

// New returns an empty picker. words and commands may be nil if that
// source is not in use.
func New(words WordSource, commands CommandSource) *Picker {
	return &Picker{words: words, commands: commands}
}

// AddCustom appends a custom entry, reusing a slot freed by ClearCustom
// before growing the backing slab, and returns its slot index.
func (p *Picker) AddCustom(text string) int {
	if p.customLen < len(p.customSlots) {
		p.customSlots[p.customLen] = text
	} else {
		p.customSlots = append(p.customSlots, text)
	}
	idx := p.customLen
	p.customLen++
	return idx
}

// ClearCustom empties the custom entry list without shrinking its
// backing slab, so the next AddCustom calls reuse the same slots.
func (p *Picker) ClearCustom() {
	p.customLen = 0
}

func (p *Picker) textFor(s Source) string {
	switch s.Kind {
	case Custom:
		return p.customSlots[s.Index]
	case WordDatabase:
		return p.words.WordAt(s.Index)
	case Command:
		return p.commands.CommandAt(s.Index)
	default:
		return ""
	}
}

// Filter rescoring every candidate against pattern, replacing the
// filtered set and clamping the cursor into its new length.
func (p *Picker) Filter(pattern string) {
	p.filtered = p.filtered[:0]

	for i := 0; i < p.customLen; i++ {
		p.tryAdd(Source{Kind: Custom, Index: i}, pattern)
	}
	if p.words != nil {
		for i := 0; i < p.words.WordCount(); i++ {
			p.tryAdd(Source{Kind: WordDatabase, Index: i}, pattern)
		}
	}
	if p.commands != nil {
		for i := 0; i < p.commands.CommandCount(); i++ {
			p.tryAdd(Source{Kind: Command, Index: i}, pattern)
		}
	}

	sort.SliceStable(p.filtered, func(i, j int) bool {
		return p.filtered[i].Score > p.filtered[j].Score
	})

	p.clampCursor()
	p.atEdge = false
}

func (p *Picker) tryAdd(s Source, pattern string) {
	sc, ok := score(p.textFor(s), pattern)
	if !ok {
		return
	}
	p.filtered = append(p.filtered, Match{Source: s, Score: sc})
}

func (p *Picker) clampCursor() {
	switch {
	case len(p.filtered) == 0:
		p.cursor = 0
	case p.cursor >= len(p.filtered):
		p.cursor = len(p.filtered) - 1
	case p.cursor < 0:
		p.cursor = 0
	}
}

// Filtered returns the current filtered, sorted result set.
func (p *Picker) Filtered() []Match {
	return p.filtered
}

// Cursor returns the index of the highlighted entry in Filtered().
func (p *Picker) Cursor() int {
	return p.cursor
}

// Scroll returns the index of the first visible entry.
func (p *Picker) Scroll() int {
	return p.scroll
}

// MoveCursor steps the cursor by delta through the filtered set. A
// single step (delta == ±1) that would run past either end does not
// wrap immediately: it parks at the edge, and the next step in the
// same direction performs the wrap. Steps of larger magnitude jump
// directly, without hysteresis.
func (p *Picker) MoveCursor(delta int) {
	n := len(p.filtered)
	if n == 0 {
		p.cursor = 0
		p.atEdge = false
		return
	}

	if delta != 1 && delta != -1 {
		idx := ((p.cursor+delta)%n + n) % n
		p.cursor = idx
		p.atEdge = false
		return
	}

	if delta > 0 {
		if p.cursor == n-1 {
			if p.atEdge {
				p.cursor = 0
				p.atEdge = false
			} else {
				p.atEdge = true
			}
			return
		}
		p.cursor++
		p.atEdge = false
		return
	}

	if p.cursor == 0 {
		if p.atEdge {
			p.cursor = n - 1
			p.atEdge = false
		} else {
			p.atEdge = true
		}
		return
	}
	p.cursor--
	p.atEdge = false
}

// UpdateScroll adjusts scroll so the cursor stays within
// [scroll, scroll+maxH), saturating so scroll never exceeds
// len(filtered)-maxH when the list is shorter than the viewport.
func (p *Picker) UpdateScroll(maxH int) {
	if maxH <= 0 {
		p.scroll = 0
		return
	}

	if p.cursor < p.scroll {
		p.scroll = p.cursor
	}
	if p.cursor >= p.scroll+maxH {
		p.scroll = p.cursor - maxH + 1
	}

	maxScroll := len(p.filtered) - maxH
	if maxScroll < 0 {
		maxScroll = 0
	}
	if p.scroll > maxScroll {
		p.scroll = maxScroll
	}
	if p.scroll < 0 {
		p.scroll = 0
	}
}
