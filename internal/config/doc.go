// Package config loads editor settings from an INI file into a flat
// map[section]map[key]value, with typed accessors for the common cases
// (string, int, bool). It is a thin layer over internal/ini: no layering,
// no schema validation, just the sections and properties the file
// actually contains.
package config
