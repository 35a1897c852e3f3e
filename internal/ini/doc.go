// Package ini parses the sectioned key=value configuration format:
// blank lines and lines starting with ";" are skipped, "[section]"
// headers open a section, and "key=value" lines add a property to the
// current section. Parse errors report the (line, column) at which
// they were detected.
package ini

import "errors"

// Error kinds, reported via ParseError.
var (
	ErrExpectedCloseSquareBrackets         = errors.New("ini: expected ']'")
	ErrSectionNotEndedWithCloseSquareBrackets = errors.New("ini: section header not ended with ']'")
	ErrEmptySectionName                    = errors.New("ini: empty section name")
	ErrExpectedSection                     = errors.New("ini: property before any section")
	ErrExpectedEquals                      = errors.New("ini: expected '='")
	ErrEmptyPropertyName                   = errors.New("ini: empty property name")
)
