package format

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "hello", "hello"},
		{"trims line edges", "  hello  \n  world  ", "hello\n\nworld"},
		{"collapses blank runs", "a\n\n\n\nb", "a\n\nb"},
		{"drops whitespace-only lines", "a\n   \t\nb", "a\n\nb"},
		{"strips bold", "**bold**", "bold"},
		{"strips italics", "*word*", "word"},
		{"strips bold italics", "***loud***", "loud"},
		{"strips emphasis mid-line", "a **b** c", "a b c"},
		{"asterisk-only line collapses", "a\n**\nb", "a\n\nb"},
		{"empty input", "", ""},
		{"only blank lines", "\n \n\t\n", ""},
		{"crlf-free multi paragraph", "first line\nsecond line\n\nthird", "first line\n\nsecond line\n\nthird"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"  hello  \n\n**world**\n",
		"*a* **b** ***c***",
		"line one\n\n\nline two",
		"",
		"already\n\nnormal",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
