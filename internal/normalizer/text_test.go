package normalizer

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Empty", "", ""},
		{"Trims", "  What is 2+2?\t\n", "What is 2+2?"},
		{"Fullwidth digits", "\uff11\uff12\uff13", "123"},
		{"Ligature", "\ufb01re", "fire"},
		{"No-break space trimmed", "\u00a0Paris\u00a0", "Paris"},
		{"Decomposed accent composes", "Cafe\u0301", "Caf\u00e9"},
		{"Inner spacing kept", "a  b", "a  b"},
		{"Separator controls trimmed", "\x1cA\x1f", "A"},
		{"Group and record separators", "\x1d\x1e Lyon \x1e", "Lyon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
