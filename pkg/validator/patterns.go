package validator

import "regexp"

// The pattern library: one canonical, immutable pattern per field shape.
// Compiled once at init; validators never mutate or swap these.
var (
	// Digits-only, any length (Luhn precondition)
	digitsRegex = regexp.MustCompile(`^\d+$`)

	// Exactly 3 or 4 digits
	cvvRegex = regexp.MustCompile(`^\d{3,4}$`)

	// MM/YY shape; month range is checked separately
	expiryRegex = regexp.MustCompile(`^(\d{2})/(\d{2})$`)

	// Basic local@domain.tld shape over lowercased input
	emailRegex = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

	// Letters including Latin-1 accented forms, spaces, apostrophes, hyphens
	nameRegex = regexp.MustCompile(`^[a-zA-ZÀ-ÿ' -]+$`)

	// 7 to 15 digits, nothing else
	phoneRegex = regexp.MustCompile(`^\d{7,15}$`)

	// Password character classes
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`)
)
