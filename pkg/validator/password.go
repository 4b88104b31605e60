package validator

import (
	"fmt"
	"strings"

	"github.com/ticketbay/formkit/pkg/sanitizer"
)

// PasswordConfig bounds password length. Character-class requirements are
// fixed: at least one uppercase letter, one lowercase letter, one digit and
// one special character.
type PasswordConfig struct {
	MinLength int
	MaxLength int
}

// DefaultPasswordConfig returns the account password policy: 8-64 characters.
func DefaultPasswordConfig() PasswordConfig {
	return PasswordConfig{
		MinLength: 8,
		MaxLength: 64,
	}
}

// Password validates a new password under the default policy. The email the
// password belongs to is required context: a password equal to the account
// email (case-insensitively) is always rejected.
//
// Rules are checked in a fixed order and the first failure determines the
// message: length, embedded spaces, equality with email, then uppercase,
// lowercase, digit and special-character requirements.
func Password(raw, email string) (string, string) {
	return PasswordWithConfig(raw, email, DefaultPasswordConfig())
}

// PasswordWithConfig is Password with explicit length bounds.
func PasswordWithConfig(raw, email string, cfg PasswordConfig) (string, string) {
	password := sanitizer.Normalize(raw)

	if len(password) < cfg.MinLength || len(password) > cfg.MaxLength {
		return "", fmt.Sprintf("Password must be between %d and %d characters", cfg.MinLength, cfg.MaxLength)
	}
	if strings.Contains(password, " ") {
		return "", "Password must not contain spaces"
	}
	if strings.EqualFold(password, sanitizer.NormalizeEmail(email)) {
		return "", "Password must not match your email"
	}
	if !uppercaseRegex.MatchString(password) {
		return "", "Password must contain at least one uppercase letter"
	}
	if !lowercaseRegex.MatchString(password) {
		return "", "Password must contain at least one lowercase letter"
	}
	if !digitRegex.MatchString(password) {
		return "", "Password must contain at least one digit"
	}
	if !specialCharRegex.MatchString(password) {
		return "", "Password must contain at least one special character"
	}

	return password, ""
}

// PasswordConfirmation checks that a confirmation entry matches the
// submitted password. Only the confirmation side is normalised; the password
// is compared exactly as submitted. The clean result is always empty so the
// confirmation value can never be persisted.
func PasswordConfirmation(password, confirm string) (string, string) {
	if sanitizer.Normalize(confirm) != password {
		return "", "Passwords do not match"
	}
	return "", ""
}
