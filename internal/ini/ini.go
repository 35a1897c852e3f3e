package ini

import (
	"fmt"
	"strings"
)

// ParseError reports the (line, column) — both 0-indexed — at which
// parsing failed.
type ParseError struct {
	Err    error
	Line   int
	Column int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ini:%d:%d: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Property is a single key=value pair within a section.
type Property struct {
	Key   string
	Value string
}

// Section is a named group of properties, in the order they were
// parsed.
type Section struct {
	Name       string
	Properties []Property
}

// Document is a parsed INI file: an ordered list of sections.
type Document struct {
	Sections []Section
}

// Get returns the value of key within section, if present.
func (d *Document) Get(section, key string) (string, bool) {
	for _, s := range d.Sections {
		if s.Name != section {
			continue
		}
		for _, p := range s.Properties {
			if p.Key == key {
				return p.Value, true
			}
		}
	}
	return "", false
}

func firstNonSpace(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return i
		}
	}
	return -1
}

// Parse parses an INI document from text.
func Parse(text string) (*Document, *ParseError) {
	doc := &Document{}
	var current *Section

	lines := strings.Split(text, "\n")
	for lineNo, raw := range lines {
		line := strings.TrimRight(raw, "\r")

		idx := firstNonSpace(line)
		if idx == -1 {
			continue
		}
		if line[idx] == ';' {
			continue
		}

		if line[idx] == '[' {
			closeIdx := strings.LastIndexByte(line, ']')
			if closeIdx == -1 {
				return nil, &ParseError{Err: ErrExpectedCloseSquareBrackets, Line: lineNo, Column: idx}
			}
			if closeIdx != len(line)-1 {
				return nil, &ParseError{Err: ErrSectionNotEndedWithCloseSquareBrackets, Line: lineNo, Column: closeIdx + 1}
			}
			name := strings.TrimSpace(line[idx+1 : closeIdx])
			if name == "" {
				return nil, &ParseError{Err: ErrEmptySectionName, Line: lineNo, Column: idx + 1}
			}
			doc.Sections = append(doc.Sections, Section{Name: name})
			current = &doc.Sections[len(doc.Sections)-1]
			continue
		}

		if current == nil {
			return nil, &ParseError{Err: ErrExpectedSection, Line: lineNo, Column: idx}
		}

		eqIdx := strings.IndexByte(line, '=')
		if eqIdx == -1 {
			return nil, &ParseError{Err: ErrExpectedEquals, Line: lineNo, Column: len(line)}
		}

		key := strings.TrimSpace(line[idx:eqIdx])
		if key == "" {
			return nil, &ParseError{Err: ErrEmptyPropertyName, Line: lineNo, Column: idx}
		}

		value := line[eqIdx+1:]
		current.Properties = append(current.Properties, Property{Key: key, Value: value})
	}

	return doc, nil
}
