package secrets

import "crypto/rand"

// KeySize is the default key size produced by GenerateKey: 256-bit AES.
const KeySize = 32

// ValidateKey checks that a key has a valid AES length. 16, 24 and 32 bytes
// select AES-128, AES-192 and AES-256 respectively.
func ValidateKey(key []byte) error {
	switch len(key) {
	case 16, 24, 32:
		return nil
	}
	return ErrInvalidKey
}

// GenerateKey creates a new random 32-byte key suitable for encryption.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}
