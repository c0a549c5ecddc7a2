// Package normalizer converts raw question rows into validated records.
package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize applies NFKC composition and trims surrounding whitespace.
func Normalize(s string) string {
	return trimSpace(norm.NFKC.String(s))
}

// isSpace extends unicode.IsSpace with the file, group, record and unit
// separators (U+001C..U+001F), which spreadsheet exports treat as blanks.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}
