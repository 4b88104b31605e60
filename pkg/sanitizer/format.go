package sanitizer

import "strings"

// NormalizeEmail lowercases a normalized email address. Invalid shapes are
// passed through unchanged; format rejection belongs to the validator.
func NormalizeEmail(email string) string {
	return strings.ToLower(Normalize(email))
}

// MaskEmail preserves the full domain for user recognition while hiding
// personal info in the local part.
func MaskEmail(email string) string {
	email = Normalize(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	local := parts[0]
	domain := parts[1]

	switch len(local) {
	case 0:
		return email
	case 1:
		return "*@" + domain
	}

	return string(local[0]) + strings.Repeat("*", len(local)-1) + "@" + domain
}

// NormalizePhone removes all whitespace from a normalized phone value.
// Other separators are deliberately kept so that malformed numbers fail
// validation instead of being silently repaired.
func NormalizePhone(phone string) string {
	return whitespaceRegex.ReplaceAllString(Normalize(phone), "")
}

// NormalizeCreditCard strips everything but digits for storage and
// checksum validation.
func NormalizeCreditCard(cardNumber string) string {
	return nonDigitRegex.ReplaceAllString(Normalize(cardNumber), "")
}

// MaskCreditCard follows the PCI DSS requirement to show only the last 4 digits.
func MaskCreditCard(cardNumber string) string {
	digits := NormalizeCreditCard(cardNumber)
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}

	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}
