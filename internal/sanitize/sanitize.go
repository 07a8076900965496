// Package sanitize strips PII patterns and control characters from free text
// before it is embedded in prompts or echoed back in fallback structures.
package sanitize

import (
	"regexp"
	"strings"
)

const (
	// MaxLength is the hard cap applied to sanitized text.
	MaxLength = 6000
	// DefaultMinInput and DefaultMaxInput bound acceptable input lengths
	// after sanitization.
	DefaultMinInput = 10
	DefaultMaxInput = 50000
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+?1[-. ]?)?\(?\d{3}\)?[-. ]?\d{3}[-. ]?\d{4}`)
	cardPattern  = regexp.MustCompile(`\d{4}[-. ]?\d{4}[-. ]?\d{4}[-. ]?\d{4}`)

	whitespaceRuns = regexp.MustCompile(`\s+`)
	nonASCIIRuns   = regexp.MustCompile(`[^\x00-\x7F]+`)
	controlChars   = regexp.MustCompile(`[\x00-\x1F\x7F]`)
)

// Sanitize redacts emails, phone numbers, and card-like digit sequences,
// collapses whitespace, drops non-ASCII and control characters, and truncates
// the result to MaxLength. It always returns a string; empty input yields "".
func Sanitize(text string) string {
	if text == "" {
		return ""
	}

	text = emailPattern.ReplaceAllString(text, "[email]")
	text = phonePattern.ReplaceAllString(text, "[phone]")
	text = cardPattern.ReplaceAllString(text, "[card]")

	text = strings.TrimSpace(text)
	text = whitespaceRuns.ReplaceAllString(text, " ")
	text = nonASCIIRuns.ReplaceAllString(text, " ")
	text = controlChars.ReplaceAllString(text, "")

	return Truncate(text, MaxLength)
}

// ValidateLength sanitizes the text and reports whether the sanitized length
// lies within [min, max] inclusive.
func ValidateLength(text string, min, max int) bool {
	n := len(Sanitize(text))
	return n >= min && n <= max
}

// Truncate cuts text to at most max bytes. Sanitized text is pure ASCII, so
// byte and character counts coincide.
func Truncate(text string, max int) string {
	if len(text) > max {
		return text[:max]
	}
	return text
}
