package source

import (
	"fmt"
	"strings"
)

// Snippet renders a terminal-friendly excerpt of the file around the given
// byte offset: the line in question with up to one line of context on each
// side, numbered, with a caret under the offending column and msg in the
// header. Lines are reported 1-based.
func (f *File) Snippet(offset int, msg string) string {
	position := f.PositionAt(offset)
	lines := strings.Split(string(f.content), "\n")

	line := position.Line
	if line >= len(lines) {
		line = len(lines) - 1
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s:%d:%d: %s\n\n", f.name, position.Line+1, position.Column+1, msg)

	if line > 0 {
		fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	}

	fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", position.Column))

	if line+1 < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+2, lines[line+1])
	}

	return b.String()
}
