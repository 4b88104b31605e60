// Package secrets provides authenticated symmetric encryption for strings
// that must be stored or transmitted at rest, using AES-GCM with a caller
// supplied key.
//
// Encryption returns a detached Payload of three independent hex strings —
// ciphertext, nonce and authentication tag — so the result is JSON- and
// storage-friendly and all three parts are explicitly required together to
// decrypt:
//
//	key, _ := secrets.GenerateKey()
//
//	payload, err := secrets.Encrypt(key, "card token 4532…")
//	if err != nil {
//	    // handle error
//	}
//
//	plain, err := secrets.Decrypt(key, payload)
//	if errors.Is(err, secrets.ErrAuthenticationFailed) {
//	    // payload was tampered with; no plaintext was produced
//	}
//
// A fresh random nonce is generated inside every Encrypt call and is never
// reused under a key; encrypting the same plaintext twice yields different
// payloads. Decrypt verifies the authentication tag before releasing any
// plaintext — a failed tag is a loud ErrAuthenticationFailed, never
// truncated or corrupted output.
//
// # Error handling
//
// All failures wrap a package sentinel (ErrInvalidKey, ErrMalformedPayload,
// ErrAuthenticationFailed, ErrEncryptionFailed); match with errors.Is.
// Malformed hex in a payload is reported as ErrMalformedPayload and is
// distinct from an authentication failure.
//
// # Performance
//
// AES-GCM is hardware-accelerated on modern CPUs; calls are synchronous and
// allocate only the nonce, tag and payload buffers.
package secrets
