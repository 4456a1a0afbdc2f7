package specification

import "testing"

func TestDocumentSearchQueryPattern(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "case is left to the database", query: "Newton", want: "%Newton%"},
		{name: "non-ascii kept verbatim", query: "Ångström", want: "%Ångström%"},
		{name: "percent is literal", query: "100%", want: `%100\%%`},
		{name: "underscore is literal", query: "f_x", want: `%f\_x%`},
		{name: "backslash is literal", query: `a\b`, want: `%a\\b%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DocumentSearchQuery{Query: tt.query}.Pattern()
			if got != tt.want {
				t.Errorf("Pattern() = %q, want %q", got, tt.want)
			}
		})
	}
}
