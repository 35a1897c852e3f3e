package movement

import "github.com/rivo/uniseg"

// graphemeBoundaries returns the byte offsets at which each grapheme
// cluster of text starts, plus a trailing sentinel equal to len(text).
func graphemeBoundaries(text string) []int {
	bounds := []int{0}
	offset := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		_, to := g.Positions()
		offset = to
		bounds = append(bounds, offset)
	}
	return bounds
}

// nextGraphemeBoundary returns the byte offset immediately after the
// grapheme cluster starting at column, or len(text) if column is
// already at or past the end.
func nextGraphemeBoundary(text string, column int) int {
	bounds := graphemeBoundaries(text)
	for i, b := range bounds {
		if b == column && i+1 < len(bounds) {
			return bounds[i+1]
		}
		if b > column {
			return b
		}
	}
	return len(text)
}

// prevGraphemeBoundary returns the byte offset at which the grapheme
// cluster ending at column begins, or 0 if column is already at or
// before the start.
func prevGraphemeBoundary(text string, column int) int {
	bounds := graphemeBoundaries(text)
	prev := 0
	for _, b := range bounds {
		if b >= column {
			break
		}
		prev = b
	}
	return prev
}
