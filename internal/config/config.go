package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pepperedit/core/internal/ini"
)

// Settings is a parsed configuration: sections of key=value properties.
type Settings struct {
	sections map[string]map[string]string
}

// Load reads and parses the INI file at path.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(string(data))
}

// Parse parses INI text into Settings.
func Parse(text string) (*Settings, error) {
	doc, perr := ini.Parse(text)
	if perr != nil {
		return nil, fmt.Errorf("config: parse: %w", perr)
	}

	s := &Settings{sections: make(map[string]map[string]string, len(doc.Sections))}
	for _, sec := range doc.Sections {
		props, ok := s.sections[sec.Name]
		if !ok {
			props = make(map[string]string)
			s.sections[sec.Name] = props
		}
		for _, p := range sec.Properties {
			props[p.Key] = p.Value
		}
	}
	return s, nil
}

// String returns the string value at section/key, or fallback if absent.
func (s *Settings) String(section, key, fallback string) string {
	if props, ok := s.sections[section]; ok {
		if v, ok := props[key]; ok {
			return v
		}
	}
	return fallback
}

// Int returns the integer value at section/key, or fallback if absent
// or not a valid integer.
func (s *Settings) Int(section, key string, fallback int) int {
	raw, ok := s.lookup(section, key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// Bool returns the boolean value at section/key, or fallback if absent
// or not a valid boolean. Accepts the same forms as strconv.ParseBool
// plus "yes"/"no".
func (s *Settings) Bool(section, key string, fallback bool) bool {
	raw, ok := s.lookup(section, key)
	if !ok {
		return fallback
	}
	switch raw {
	case "yes":
		return true
	case "no":
		return false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return b
}

// Has reports whether section/key is present.
func (s *Settings) Has(section, key string) bool {
	_, ok := s.lookup(section, key)
	return ok
}

// Section returns a copy of every key=value pair in section.
func (s *Settings) Section(section string) map[string]string {
	props, ok := s.sections[section]
	if !ok {
		return nil
	}
	out := make(map[string]string, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}

func (s *Settings) lookup(section, key string) (string, bool) {
	props, ok := s.sections[section]
	if !ok {
		return "", false
	}
	v, ok := props[key]
	return v, ok
}
