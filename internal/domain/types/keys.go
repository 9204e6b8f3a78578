package types

// P256Private is a raw NIST P-256 scalar.
type P256Private [32]byte

// P256Public is an uncompressed P-256 point, 0x04 || X || Y.
type P256Public [65]byte

// Slice returns the scalar as a byte slice.
func (k P256Private) Slice() []byte { return k[:] }

// Slice returns the point as a byte slice.
func (k P256Public) Slice() []byte { return k[:] }

// VapidKeyPair is the application server's long-term VAPID signing pair.
//
// It is generated once, persisted through the record store, and immutable for
// the life of the process. The public point must always equal Priv·G; a stored
// pair that breaks that relation is corrupt and rejected at load time, because
// silently regenerating would orphan every subscription created against the
// old public key.
type VapidKeyPair struct {
	Priv P256Private
	Pub  P256Public
}
