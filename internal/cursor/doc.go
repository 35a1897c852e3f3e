// Package cursor implements the multi-cursor collection: a sorted,
// non-overlapping set of (anchor, position) pairs with one cursor marked
// main, plus a scratch column used by vertical motion to preserve the
// "virtual column" across lines of different lengths.
//
// All mutation goes through a guard (WithCursors): while the guard is
// open, cursors may be added, mutated, or cleared freely and may become
// unsorted or overlapping. On release the collection re-sorts, merges
// touching or overlapping selections, and re-identifies the main cursor.
package cursor
