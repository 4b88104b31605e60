package credential

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// AlgorithmPBKDF2SHA256 is the algorithm tag written into every credential
// this package produces, and the only tag it verifies.
const AlgorithmPBKDF2SHA256 = "pbkdf2_sha256"

// StoredCredential is the persistable form of a hashed password. Salt and
// Hash are hex-encoded; the record round-trips byte-for-byte through JSON.
type StoredCredential struct {
	Algorithm  string `json:"algorithm"`
	Iterations int    `json:"iterations"`
	Salt       string `json:"salt"`
	Hash       string `json:"hash"`
}

// Config tunes the key derivation. Zero values fall back to the defaults.
type Config struct {
	Iterations int
	SaltLength int
	KeyLength  int
}

// DefaultConfig returns the production parameters: 200,000 iterations,
// 16-byte salt, 32-byte derived key.
func DefaultConfig() Config {
	return Config{
		Iterations: 200_000,
		SaltLength: 16,
		KeyLength:  32,
	}
}

// Hasher derives and verifies salted password hashes. The zero value is not
// usable; construct with New.
type Hasher struct {
	cfg Config
}

// New returns a Hasher with the given config, filling unset fields from
// DefaultConfig.
func New(cfg Config) *Hasher {
	def := DefaultConfig()
	if cfg.Iterations <= 0 {
		cfg.Iterations = def.Iterations
	}
	if cfg.SaltLength <= 0 {
		cfg.SaltLength = def.SaltLength
	}
	if cfg.KeyLength <= 0 {
		cfg.KeyLength = def.KeyLength
	}
	return &Hasher{cfg: cfg}
}

// Hash derives a salted credential from a password. A fresh random salt is
// generated per call, so hashing the same password twice yields different
// records.
func (h *Hasher) Hash(password string) (StoredCredential, error) {
	salt := make([]byte, h.cfg.SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return StoredCredential{}, errors.Join(ErrSaltGeneration, err)
	}

	key := pbkdf2.Key([]byte(password), salt, h.cfg.Iterations, h.cfg.KeyLength, sha256.New)

	return StoredCredential{
		Algorithm:  AlgorithmPBKDF2SHA256,
		Iterations: h.cfg.Iterations,
		Salt:       hex.EncodeToString(salt),
		Hash:       hex.EncodeToString(key),
	}, nil
}

// Verify recomputes the derivation with the stored salt and iteration count
// and compares the result against the stored key in constant time. It
// returns (false, nil) for a wrong password and an error only when the
// stored record itself cannot be verified.
func (h *Hasher) Verify(password string, stored StoredCredential) (bool, error) {
	if stored.Algorithm != AlgorithmPBKDF2SHA256 {
		return false, ErrUnsupportedAlgorithm
	}
	if stored.Iterations <= 0 {
		return false, ErrMalformedCredential
	}

	salt, err := hex.DecodeString(stored.Salt)
	if err != nil {
		return false, errors.Join(ErrMalformedCredential, err)
	}
	expected, err := hex.DecodeString(stored.Hash)
	if err != nil {
		return false, errors.Join(ErrMalformedCredential, err)
	}
	if len(salt) == 0 || len(expected) == 0 {
		return false, ErrMalformedCredential
	}

	key := pbkdf2.Key([]byte(password), salt, stored.Iterations, len(expected), sha256.New)

	return subtle.ConstantTimeCompare(key, expected) == 1, nil
}

// Hash derives a credential with the default parameters.
func Hash(password string) (StoredCredential, error) {
	return New(DefaultConfig()).Hash(password)
}

// Verify checks a password against a stored credential using the record's
// own parameters.
func Verify(password string, stored StoredCredential) (bool, error) {
	return New(DefaultConfig()).Verify(password, stored)
}
