package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns a short hex fingerprint of a public key or endpoint.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars). Logs use
// this instead of raw endpoints, which embed per-device capability URLs.
func Fingerprint(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:10])
}
