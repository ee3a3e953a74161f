package normalize

import "testing"

func TestCleanText_TrimAndCollapse(t *testing.T) {
	// WHAT: Leading/trailing whitespace is trimmed and internal runs collapse
	// to single spaces.
	// WHY: Rendered markup carries indentation and newlines that are not data.
	cases := []struct {
		input string
		want  string
	}{
		{"  Jane   Doe  ", "Jane Doe"},
		{"Engineer\n\t at   Acme", "Engineer at Acme"},
		{"already clean", "already clean"},
	}
	for _, tc := range cases {
		if got := CleanText(tc.input); got != tc.want {
			t.Errorf("CleanText(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestCleanText_Empty(t *testing.T) {
	// WHAT: All-whitespace input yields the empty string.
	// WHY: Empty string is the "no data" value across the result types.
	for _, input := range []string{"", "   ", "\n\t "} {
		if got := CleanText(input); got != "" {
			t.Errorf("CleanText(%q) = %q, want empty", input, got)
		}
	}
}
