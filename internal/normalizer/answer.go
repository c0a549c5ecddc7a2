package normalizer

import (
	"math"
	"unicode"
	"unicode/utf8"
)

// answerRule extracts a zero-based candidate index from a normalized answer.
// matched reports whether the rule recognized the text at all; a matched rule
// decides the outcome even when idx turns out to be out of range.
type answerRule struct {
	name  string
	match func(s string) (idx int, matched bool)
}

// answerRules are evaluated in order; ordinals take precedence over letters.
var answerRules = []answerRule{
	{name: "ordinal", match: matchOrdinal},
	{name: "letter", match: matchLetter},
}

// ResolveAnswer maps an answer cell to a zero-based index into numChoices choices.
func ResolveAnswer(text string, numChoices int) (int, bool) {
	s := Normalize(text)
	if s == "" {
		return 0, false
	}

	for _, rule := range answerRules {
		idx, matched := rule.match(s)
		if !matched {
			continue
		}

		if idx < 0 || idx >= numChoices {
			return 0, false
		}

		return idx, true
	}

	return 0, false
}

// matchOrdinal reads the first run of decimal digits, in any script, as a
// 1-based position.
func matchOrdinal(s string) (int, bool) {
	n := 0
	inRun := false
	overflow := false

	for _, r := range s {
		d, ok := digitValue(r)
		if !ok {
			if inRun {
				break
			}
			continue
		}

		inRun = true
		if n > (math.MaxInt-d)/10 {
			overflow = true
			continue
		}
		n = n*10 + d
	}

	if !inRun {
		return 0, false
	}

	if overflow {
		// A number, just not a usable one.
		return -1, true
	}

	return n - 1, true
}

// digitValue returns the numeric value of a Unicode decimal digit.
// Nd code points come in contiguous runs of ten starting at zero, so the
// value is the offset from the start of the enclosing range modulo ten.
func digitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	if r < utf8.RuneSelf || !unicode.Is(unicode.Nd, r) {
		return 0, false
	}

	for _, rg := range unicode.Nd.R16 {
		if rune(rg.Lo) <= r && r <= rune(rg.Hi) {
			return int(r-rune(rg.Lo)) % 10, true
		}
	}
	for _, rg := range unicode.Nd.R32 {
		if rune(rg.Lo) <= r && r <= rune(rg.Hi) {
			return int(r-rune(rg.Lo)) % 10, true
		}
	}

	return 0, false
}

// matchLetter finds the first standalone A-D letter, case-insensitive.
func matchLetter(s string) (int, bool) {
	prev := utf8.RuneError
	havePrev := false

	for i, r := range s {
		upper := unicode.ToUpper(r)
		if upper >= 'A' && upper <= 'D' && r < utf8.RuneSelf {
			next, _ := utf8.DecodeRuneInString(s[i+1:])
			beforeOK := !havePrev || !isWordRune(prev)
			afterOK := i+1 >= len(s) || !isWordRune(next)

			if beforeOK && afterOK {
				return int(upper - 'A'), true
			}
		}

		prev = r
		havePrev = true
	}

	return 0, false
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
