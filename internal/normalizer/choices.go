package normalizer

import "strings"

// ChoiceSeparator separates choices inside the choices column.
const ChoiceSeparator = "|"

// invisibleSpaces maps the no-break and zero-width spaces spreadsheets emit to a plain space.
var invisibleSpaces = strings.NewReplacer(
	"\u00a0", " ", // no-break space
	"\u202f", " ", // narrow no-break space
	"\u2009", " ", // thin space
	"\u2007", " ", // figure space
	"\u200a", " ", // hair space
	"\u200b", " ", // zero-width space
)

// SplitChoices splits a pipe-separated choices cell.
//
// Each segment loses one leading apostrophe (Excel's force-text marker) and its
// leading whitespace. Trailing and inner spacing is kept. Blank segments are dropped.
func SplitChoices(raw string) []string {
	parts := strings.Split(raw, ChoiceSeparator)
	choices := make([]string, 0, len(parts))

	for _, c := range parts {
		c = strings.TrimPrefix(c, "'")
		c = invisibleSpaces.Replace(c)
		c = strings.TrimLeftFunc(c, isSpace)

		if trimSpace(c) == "" {
			continue
		}

		choices = append(choices, c)
	}

	return choices
}
