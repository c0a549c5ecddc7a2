// Package utils provides common string helpers for report output.
package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated cell content.
const Ellipsis = "..."

// SingleLine collapses all whitespace runs, including newlines, into single spaces.
func SingleLine(str string) string {
	return strings.Join(strings.Fields(str), " ")
}

// TruncateWidth truncates str to at most maxWidth display columns, wide runes
// counting as two. Truncated text ends in Ellipsis.
func TruncateWidth(str string, maxWidth int) string {
	if maxWidth <= 0 || runewidth.StringWidth(str) <= maxWidth {
		return str
	}

	return runewidth.Truncate(str, maxWidth, Ellipsis)
}

// EscapeCell makes str safe inside a markdown table cell.
func EscapeCell(str string) string {
	return strings.ReplaceAll(SingleLine(str), "|", `\|`)
}
