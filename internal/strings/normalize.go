// Package strings holds the text normalization shared by task input,
// lookups and rendering.
package strings

import (
	"strings"
)

// NormalizeWhitespace collapses runs of whitespace into single spaces and
// trims the ends.
func NormalizeWhitespace(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// NormalizeKey lowercases value and normalizes its whitespace, so that
// user spellings like "  In   Progress" compare equal to "in progress".
func NormalizeKey(value string) string {
	return strings.ToLower(NormalizeWhitespace(value))
}

// NormalizeNewlines replaces CRLF and CR with LF.
func NormalizeNewlines(value string) string {
	if !strings.ContainsRune(value, '\r') {
		return value
	}
	value = strings.ReplaceAll(value, "\r\n", "\n")
	return strings.ReplaceAll(value, "\r", "\n")
}

// ValidUTF8 replaces each run of invalid UTF-8 bytes with U+FFFD, the same
// substitution encoding/json makes when it writes a string.
func ValidUTF8(value string) string {
	return strings.ToValidUTF8(value, "\uFFFD")
}

// TrimTrailingNewlines removes trailing CR/LF characters.
func TrimTrailingNewlines(value string) string {
	return strings.TrimRight(value, "\r\n")
}
