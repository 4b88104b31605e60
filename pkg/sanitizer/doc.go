// Package sanitizer provides stateless helpers for normalising untrusted
// form input before validation and storage.
//
// Every helper is a small pure function over strings:
//
//   - Normalize applies Unicode NFKC compatibility composition and trims
//     surrounding whitespace. It is the first step of every field validator.
//
//   - NormalizeWhitespace collapses internal whitespace runs to single
//     spaces, for free-text fields such as cardholder names.
//
//   - NormalizeEmail, NormalizePhone and NormalizeCreditCard apply the
//     field-specific normalisation contracts (lowercasing, stripping spaces,
//     stripping non-digits).
//
//   - MaskEmail and MaskCreditCard redact sensitive values for display,
//     following the PCI pattern of keeping only the last four card digits.
//
// The higher-order Apply and Compose helpers build reusable normalisation
// pipelines:
//
//	cleanName := sanitizer.Compose(
//	    sanitizer.Normalize,
//	    sanitizer.NormalizeWhitespace,
//	)
//
//	safe := cleanName("  Ana   María\t ") // "Ana María"
//
// # Error handling
//
// None of the helpers returns an error. They always produce a safe result,
// falling back to the empty string for empty input. Rejecting malformed
// values is the validator package's job, not this one's.
package sanitizer
