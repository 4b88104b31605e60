package sanitizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize applies Unicode NFKC compatibility composition and removes
// leading and trailing whitespace. NFKC folds full-width and compatibility
// forms into their canonical equivalents so that visually identical input
// compares equal.
func Normalize(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// TrimToLower removes leading and trailing whitespace and converts to lowercase.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeWhitespace collapses runs of whitespace to single spaces and
// trims the result. Prevents layout issues from multiple spaces, tabs, and
// newlines in free-text fields.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// MaxLength truncates a string to the specified maximum length in bytes.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
