package article

import "testing"

func TestCleanHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips tags",
			input: "<p>Hello <b>world</b></p>",
			want:  "Hello world",
		},
		{
			name:  "unescapes entities",
			input: "Q&amp;A &ndash; models &amp; agents",
			want:  "Q&A – models & agents",
		},
		{
			name:  "collapses whitespace",
			input: "  spread \n\t  out   text  ",
			want:  "spread out text",
		},
		{
			name:  "plain text untouched",
			input: "already clean",
			want:  "already clean",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanHTML(tt.input); got != tt.want {
				t.Errorf("CleanHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"short", 100, "short"},
		{"one two three four", 9, "one two"},
		{"nowhitespacehere", 5, "nowhi"},
	}

	for _, tt := range tests {
		if got := truncate(tt.input, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}
