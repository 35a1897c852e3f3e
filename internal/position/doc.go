// Package position defines the buffer-coordinate primitives shared by every
// other editing package: a (line, column_byte) Position and a half-open
// Range built from two positions.
//
// A column is always a byte offset into the UTF-8 bytes of its line, never
// a rune or grapheme index. Callers that step by characters (see
// internal/movement) must compute byte-aligned columns themselves; this
// package only orders and shifts positions, it never decodes text.
package position
