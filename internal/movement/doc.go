// Package movement implements the cursor motion engine: columns,
// lines, words, and line-boundary jumps, all applied to a cursor
// collection through its mutation guard.
//
// Single-character steps are grapheme-cluster aware via
// github.com/rivo/uniseg, so a multi-codepoint emoji or a
// combining-mark sequence moves as one visual character rather than
// one UTF-8 rune. Word motion classifies individual runes, not
// grapheme clusters.
package movement
