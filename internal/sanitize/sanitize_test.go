package sanitize

import (
	"strings"
	"testing"
)

func TestSanitizeRedactsPII(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "email",
			input: "Reach me at jane.dev+work@example.co.uk for details",
			want:  "Reach me at [email] for details",
		},
		{
			name:  "phone with separators",
			input: "Call (555) 123-4567 today",
			want:  "Call [phone] today",
		},
		{
			name:  "phone with country code",
			input: "Call +1 555 123 4567 today",
			want:  "Call [phone] today",
		},
		{
			name:  "card number",
			input: "Card 4111-1111-1111-1111 on file",
			want:  "Card [card] on file",
		},
		{
			name:  "whitespace collapsed",
			input: "  lots\t\tof\n\nspace  ",
			want:  "lots of space",
		},
		{
			name:  "non-ASCII run becomes one space",
			input: "naïve approach",
			want:  "na ve approach",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Sanitize(tc.input)
			if got != tc.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSanitizeEmpty(t *testing.T) {
	if got := Sanitize(""); got != "" {
		t.Errorf("Sanitize(\"\") = %q", got)
	}
}

func TestSanitizeTruncates(t *testing.T) {
	long := strings.Repeat("a", MaxLength+500)
	if got := Sanitize(long); len(got) != MaxLength {
		t.Errorf("len = %d, want %d", len(got), MaxLength)
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	input := "Contact jane@example.com or (555) 123-4567.\n\nGo engineer."
	once := Sanitize(input)
	twice := Sanitize(once)
	if once != twice {
		t.Errorf("Sanitize is not idempotent: %q vs %q", once, twice)
	}
}

func TestValidateLength(t *testing.T) {
	cases := []struct {
		name  string
		input string
		min   int
		max   int
		want  bool
	}{
		{"within bounds", "a perfectly reasonable input", 10, 100, true},
		{"too short", "short", 10, 100, false},
		{"bounds applied after sanitization", "   short   ", 10, 100, false},
		{"at minimum", strings.Repeat("a", 10), 10, 100, true},
		{"empty", "", 10, 100, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidateLength(tc.input, tc.min, tc.max); got != tc.want {
				t.Errorf("ValidateLength(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 3); got != "hel" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("hi", 10); got != "hi" {
		t.Errorf("Truncate should not pad, got %q", got)
	}
}
