package crypto

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"pushkit/internal/domain"
)

// ErrBadPoint is returned when bytes do not decode to an uncompressed P-256
// point on the curve.
var ErrBadPoint = errors.New("not a valid uncompressed P-256 point")

// GenerateP256 returns a fresh NIST P-256 key pair. The public key is in
// uncompressed encoding, 0x04 || X || Y. Failure means the entropy source
// failed and is not retryable.
func GenerateP256() (priv domain.P256Private, pub domain.P256Public, err error) {
	key, err := ecdh.P256().GenerateKey(rand.Reader)
	if err != nil {
		return priv, pub, fmt.Errorf("generate P-256 key: %w", err)
	}
	copy(priv[:], key.Bytes())
	copy(pub[:], key.PublicKey().Bytes())
	return priv, pub, nil
}

// DerivePublic computes the uncompressed public point for a raw scalar.
func DerivePublic(priv domain.P256Private) (pub domain.P256Public, err error) {
	key, err := ecdh.P256().NewPrivateKey(priv.Slice())
	if err != nil {
		return pub, fmt.Errorf("invalid P-256 scalar: %w", err)
	}
	copy(pub[:], key.PublicKey().Bytes())
	return pub, nil
}

// ParsePoint validates and decodes an uncompressed P-256 point.
func ParsePoint(b []byte) (pub domain.P256Public, err error) {
	if len(b) != 65 || b[0] != 0x04 {
		return pub, ErrBadPoint
	}
	if _, err := ecdh.P256().NewPublicKey(b); err != nil {
		return pub, ErrBadPoint
	}
	copy(pub[:], b)
	return pub, nil
}

// DH computes the P-256 ECDH shared secret priv · pub.
func DH(priv domain.P256Private, pub domain.P256Public) ([]byte, error) {
	key, err := ecdh.P256().NewPrivateKey(priv.Slice())
	if err != nil {
		return nil, fmt.Errorf("invalid P-256 scalar: %w", err)
	}
	peer, err := ecdh.P256().NewPublicKey(pub.Slice())
	if err != nil {
		return nil, ErrBadPoint
	}
	return key.ECDH(peer)
}

// SigningKey builds the ECDSA view of a raw scalar for ES256 signing.
func SigningKey(priv domain.P256Private) (*ecdsa.PrivateKey, error) {
	pub, err := DerivePublic(priv)
	if err != nil {
		return nil, err
	}
	return &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{
			Curve: elliptic.P256(),
			X:     new(big.Int).SetBytes(pub[1:33]),
			Y:     new(big.Int).SetBytes(pub[33:65]),
		},
		D: new(big.Int).SetBytes(priv.Slice()),
	}, nil
}
