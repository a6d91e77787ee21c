package ui

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// HighlightID returns an ID with its unique prefix highlighted when stdout
// is a color terminal.
func HighlightID(id string, prefixLen int) string {
	if !ANSIEnabled() {
		return id
	}
	return highlightID(id, prefixLen)
}

// highlightID renders the first prefixLen bytes bold cyan.
func highlightID(id string, prefixLen int) string {
	if prefixLen <= 0 || prefixLen > len(id) {
		return id
	}
	prefix := termenv.ANSI.String(id[:prefixLen]).Bold().Foreground(termenv.ANSICyan)
	return prefix.String() + id[prefixLen:]
}

// PrefixLength looks up id's unique prefix length, ignoring case.
func PrefixLength(lengths map[string]int, id string) int {
	if id == "" {
		return 0
	}
	return lengths[strings.ToLower(id)]
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ANSIEnabled reports whether stdout should receive color and styling.
func ANSIEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return IsTerminal(os.Stdout)
}
