package picker

import (
	"strings"
	"unicode"
)

// score implements the matcher's core contract: higher is better, and
// no match is reported as (0, false) rather than a sentinel score.
// Matching is case-insensitive, greedy left-to-right: every rune of
// pattern must appear, in order, somewhere in text.
func score(text, pattern string) (int64, bool) {
	if pattern == "" || text == "" {
		return 0, false
	}

	textRunes := []rune(text)
	originalRunes := textRunes
	lowerText := []rune(strings.ToLower(text))
	patternRunes := []rune(strings.ToLower(pattern))

	matches := make([]int, 0, len(patternRunes))
	pi := 0
	for i := 0; i < len(lowerText) && pi < len(patternRunes); i++ {
		if lowerText[i] == patternRunes[pi] {
			matches = append(matches, i)
			pi++
		}
	}
	if pi != len(patternRunes) {
		return 0, false
	}

	s := int64(100)

	for i := 1; i < len(matches); i++ {
		if matches[i] == matches[i-1]+1 {
			s += 20
		}
	}

	for _, idx := range matches {
		if isWordBoundary(originalRunes, idx) {
			s += 15
		}
	}

	if matches[0] == 0 {
		s += 25
	}

	if len(matches) > 1 {
		gap := matches[len(matches)-1] - matches[0] - len(matches) + 1
		if gap > 0 {
			s -= int64(gap) * 2
		}
	}

	if matches[0] > 0 {
		s -= int64(matches[0])
	}

	if n := len(lowerText); n < 20 {
		s += int64(20 - n)
	}

	if len(lowerText) >= len(patternRunes) {
		isPrefix := true
		for i, pr := range patternRunes {
			if lowerText[i] != pr {
				isPrefix = false
				break
			}
		}
		if isPrefix {
			s += 50
		}
	}

	if len(text) == len(pattern) {
		s++
	}

	if s < 1 {
		s = 1
	}
	return s, true
}

func isWordBoundary(runes []rune, idx int) bool {
	if idx == 0 {
		return true
	}
	if idx >= len(runes) {
		return false
	}
	prev, cur := runes[idx-1], runes[idx]
	if unicode.IsSpace(prev) || unicode.IsPunct(prev) {
		return true
	}
	if unicode.IsLower(prev) && unicode.IsUpper(cur) {
		return true
	}
	return false
}
