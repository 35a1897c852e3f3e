package command

import "strings"

// SplitCommands splits text into individual command strings. Unescaped
// newlines separate commands; a backslash immediately before a newline
// continues the current command instead of ending it; "#" begins a
// comment that consumes to end of line; blank commands are dropped.
func SplitCommands(text string) []string {
	var commands []string
	var cur strings.Builder
	inComment := false
	i, n := 0, len(text)

	flush := func() {
		s := strings.TrimSpace(cur.String())
		if s != "" {
			commands = append(commands, s)
		}
		cur.Reset()
		inComment = false
	}

	for i < n {
		c := text[i]

		if c == '\\' && i+1 < n && text[i+1] == '\n' {
			i += 2
			continue
		}
		if c == '\n' {
			flush()
			i++
			continue
		}
		if c == '#' && !inComment {
			inComment = true
			i++
			continue
		}
		if !inComment {
			cur.WriteByte(c)
		}
		i++
	}
	flush()

	return commands
}
