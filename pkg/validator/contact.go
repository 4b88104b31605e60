package validator

import (
	"unicode/utf8"

	"github.com/ticketbay/formkit/pkg/sanitizer"
)

var normalizeName = sanitizer.Compose(
	sanitizer.Normalize,
	sanitizer.NormalizeWhitespace,
)

// Name validates a personal name (cardholder or account holder). Internal
// whitespace runs are collapsed to single spaces; the result must be 2 to 60
// characters of letters (including accented forms), spaces, apostrophes and
// hyphens.
func Name(raw string) (string, string) {
	name := normalizeName(raw)

	if n := utf8.RuneCountInString(name); n < 2 || n > 60 {
		return "", "Name must be between 2 and 60 characters"
	}
	if !nameRegex.MatchString(name) {
		return "", "Invalid name format"
	}

	return name, ""
}

// Email validates an email address. The value is normalised and lowercased,
// capped at 254 characters, and must match the canonical local@domain.tld
// pattern. The same pattern serves every form so addresses collected at
// checkout and registration stay interchangeable.
func Email(raw string) (string, string) {
	email := sanitizer.NormalizeEmail(raw)

	if len(email) > 254 {
		return "", "Too long"
	}
	if !emailRegex.MatchString(email) {
		return "", "Invalid email format"
	}

	return email, ""
}

// Phone validates a phone number: after stripping whitespace it must be 7 to
// 15 digits and nothing else. Other separators are rejected rather than
// repaired.
func Phone(raw string) (string, string) {
	phone := sanitizer.NormalizePhone(raw)

	if phone == "" {
		return "", "Phone number is required"
	}
	if !phoneRegex.MatchString(phone) {
		return "", "Phone number must be 7 to 15 digits"
	}

	return phone, ""
}
