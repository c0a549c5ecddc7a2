package normalizer

import (
	"reflect"
	"testing"
)

func TestSplitChoices(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"Empty", "", []string{}},
		{"Simple", "A|B", []string{"A", "B"}},
		{"Left trim only", "A | B", []string{"A ", "B"}},
		{"Leading apostrophe", "'Paris|London", []string{"Paris", "London"}},
		{"Only one apostrophe stripped", "''quoted|x", []string{"'quoted", "x"}},
		{"Apostrophe on later segment", "1|'2|3", []string{"1", "2", "3"}},
		{"Empty segments dropped", "A||B", []string{"A", "B"}},
		{"Whitespace segments dropped", "A|  |\u00a0|B|", []string{"A", "B"}},
		{"No-break space", "\u00a0Rome | Berlin", []string{"Rome ", "Berlin"}},
		{"Inner invisible spaces become spaces", "New\u00a0York|Los\u202fAngeles", []string{"New York", "Los Angeles"}},
		{"Zero-width space", "\u200bOslo|x\u200b", []string{"Oslo", "x "}},
		{"Figure and hair space", "\u2007\u200a1,000", []string{"1,000"}},
		{"Duplicates kept", "yes|yes", []string{"yes", "yes"}},
		{"Trailing spacing kept", "3 |4  |5", []string{"3 ", "4  ", "5"}},
		{"Separator controls", "\x1dA|\x1e|\x1c\x1f|B", []string{"A", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitChoices(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitChoices(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
