// Package validator implements the per-field validation rules for checkout,
// registration, login and profile forms.
//
// Every validator takes the raw submitted string (plus, for some fields, a
// second contextual string) and returns a (clean, message) pair:
//
//	clean, msg := validator.CardNumber(" 4532 0151 1283 0366 ")
//	// clean == "4532015112830366", msg == ""
//
// The message is empty if and only if the value is valid; when a value is
// rejected the clean result is always the empty string, never a partially
// sanitised value. Security-sensitive fields (CVV, password confirmation)
// return an empty clean value even when valid so they can never be persisted.
//
// All validators normalise their input first (NFKC plus field-specific
// normalisation from the sanitizer package), so callers can pass form values
// straight through. The accepted shape of each field is defined by the
// immutable pattern set in patterns.go.
//
// Validation failures are values, not errors: fixed English messages the
// caller maps to its own presentation layer.
package validator
