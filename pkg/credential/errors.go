package credential

import "errors"

var (
	// ErrUnsupportedAlgorithm is returned when a stored credential carries an
	// algorithm tag this package cannot verify.
	ErrUnsupportedAlgorithm = errors.New("unsupported credential algorithm")

	// ErrMalformedCredential is returned when a stored credential cannot be
	// decoded (bad hex, empty salt or hash, non-positive iterations).
	ErrMalformedCredential = errors.New("malformed stored credential")

	// ErrSaltGeneration is returned when the OS random source fails.
	ErrSaltGeneration = errors.New("salt generation failed")
)
