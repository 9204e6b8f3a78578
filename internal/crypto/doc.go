// Package crypto exposes the minimal primitives used by pushkit.
//
// Contents
//
//   - NIST P-256 key generation, point parsing and Diffie–Hellman
//     (GenerateP256, DerivePublic, ParsePoint, DH)
//   - ECDSA view of a raw P-256 scalar for VAPID token signing (SigningKey)
//   - URL-safe base64 helpers matching the Web Push wire encoding (B64,
//     B64Decode)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// All functions work with the fixed-size array types defined in
// internal/domain to avoid accidental reallocations. Callers should treat
// returned secrets as sensitive and rely on Wipe when practical to reduce
// lifetime in memory.
package crypto
