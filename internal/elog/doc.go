// Package elog provides the leveled structured logger used throughout
// the editor core: level filtering, a fixed prefix, and attached
// key/value fields rendered inline with each line.
package elog
