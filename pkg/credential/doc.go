// Package credential derives and verifies salted password hashes with
// PBKDF2-HMAC-SHA256.
//
// Hashing produces a self-describing StoredCredential record carrying the
// algorithm tag, the iteration count and hex-encoded salt and derived key,
// so verification needs no out-of-band parameters and iteration counts can
// be raised later without invalidating stored records:
//
//	stored, err := credential.Hash("Sup3r-Secret!")
//	// persist stored as JSON; round-trips byte-for-byte
//
//	ok, err := credential.Verify("Sup3r-Secret!", stored)
//
// Verification recomputes the derivation with the stored salt and iteration
// count and compares the result in constant time. A wrong password is not an
// error; it is (false, nil). Errors are reserved for records that cannot be
// verified at all: unknown algorithm tags, non-positive iteration counts or
// malformed hex. Match them with errors.Is against the package sentinels.
//
// The default work factor is 200,000 iterations, deliberately slow to resist
// offline brute force. Calls are CPU-bound and synchronous; keep them off
// latency-sensitive paths.
package credential
