package secrets

import "errors"

var (
	// Key validation errors
	ErrInvalidKey = errors.New("invalid key: must be 16, 24 or 32 bytes")

	// Encryption/decryption errors
	ErrEncryptionFailed     = errors.New("encryption failed")
	ErrMalformedPayload     = errors.New("malformed payload encoding")
	ErrAuthenticationFailed = errors.New("payload authentication failed")
)
