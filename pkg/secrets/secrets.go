package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"
)

// Payload is the persistable form of an encrypted string: ciphertext, nonce
// and authentication tag as three independent hex strings. All three, plus
// the key, are required to decrypt.
type Payload struct {
	Ciphertext string `json:"ciphertext"`
	Nonce      string `json:"nonce"`
	Tag        string `json:"tag"`
}

// Encrypt seals a plaintext under the supplied key with AES-GCM. A fresh
// random nonce is generated per call, so encrypting the same plaintext
// twice produces different payloads.
func Encrypt(key []byte, plaintext string) (Payload, error) {
	aead, err := newGCM(key)
	if err != nil {
		return Payload{}, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return Payload{}, errors.Join(ErrEncryptionFailed, err)
	}

	// Seal appends the tag to the ciphertext; split it off into its own field
	sealed := aead.Seal(nil, nonce, []byte(plaintext), nil)
	tagOffset := len(sealed) - aead.Overhead()

	return Payload{
		Ciphertext: hex.EncodeToString(sealed[:tagOffset]),
		Nonce:      hex.EncodeToString(nonce),
		Tag:        hex.EncodeToString(sealed[tagOffset:]),
	}, nil
}

// Decrypt opens a payload under the supplied key. The authentication tag is
// verified before any plaintext is returned; tampering with any part of the
// payload yields ErrAuthenticationFailed and no output.
func Decrypt(key []byte, p Payload) (string, error) {
	aead, err := newGCM(key)
	if err != nil {
		return "", err
	}

	ciphertext, err := hex.DecodeString(p.Ciphertext)
	if err != nil {
		return "", errors.Join(ErrMalformedPayload, err)
	}
	nonce, err := hex.DecodeString(p.Nonce)
	if err != nil {
		return "", errors.Join(ErrMalformedPayload, err)
	}
	tag, err := hex.DecodeString(p.Tag)
	if err != nil {
		return "", errors.Join(ErrMalformedPayload, err)
	}

	if len(nonce) != aead.NonceSize() || len(tag) != aead.Overhead() {
		return "", ErrMalformedPayload
	}

	sealed := append(ciphertext, tag...)

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrAuthenticationFailed
	}

	return string(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}

	return aead, nil
}
