// Package picker implements the fuzzy-filtered list component shared
// by the command palette, buffer switcher, and LSP action menus.
//
// Candidates come from three kinds of source: a stable slab of custom
// entries reused by slot index across filter cycles, a WordSource
// (the opaque word database), and a CommandSource (the builtin
// command table). Scoring is a greedy left-to-right character scan
// with bonuses for consecutive runs, word boundaries, and prefixes.
package picker

import "errors"

// ErrEmptyFilteredSet reports that the filtered set is empty. No function
// in this package returns it: MoveCursor on an empty set resets the
// cursor to 0.
var ErrEmptyFilteredSet = errors.New("picker: filtered set is empty")
