package crypto_test

import (
	"errors"
	"testing"

	"pushkit/internal/crypto"
)

func TestGenerateP256_PublicMatchesScalarMult(t *testing.T) {
	priv, pub, err := crypto.GenerateP256()
	if err != nil {
		t.Fatalf("GenerateP256: %v", err)
	}
	if pub[0] != 0x04 {
		t.Fatalf("public key not uncompressed, leading byte %#x", pub[0])
	}

	derived, err := crypto.DerivePublic(priv)
	if err != nil {
		t.Fatalf("DerivePublic: %v", err)
	}
	if derived != pub {
		t.Fatal("derived public key differs from generated public key")
	}
}

func TestParsePoint_RejectsMalformed(t *testing.T) {
	_, good, err := crypto.GenerateP256()
	if err != nil {
		t.Fatalf("GenerateP256: %v", err)
	}

	tests := []struct {
		name string
		in   []byte
	}{
		{"empty", nil},
		{"short", good[:64]},
		{"long", append(good.Slice(), 0x00)},
		{"compressed prefix", append([]byte{0x02}, good[1:]...)},
		{"off curve", func() []byte {
			b := append([]byte(nil), good.Slice()...)
			b[64] ^= 0x01
			return b
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := crypto.ParsePoint(tt.in); !errors.Is(err, crypto.ErrBadPoint) {
				t.Fatalf("want ErrBadPoint, got %v", err)
			}
		})
	}
}

func TestDH_SharedSecretAgrees(t *testing.T) {
	aPriv, aPub, err := crypto.GenerateP256()
	if err != nil {
		t.Fatalf("GenerateP256: %v", err)
	}
	bPriv, bPub, err := crypto.GenerateP256()
	if err != nil {
		t.Fatalf("GenerateP256: %v", err)
	}

	ab, err := crypto.DH(aPriv, bPub)
	if err != nil {
		t.Fatalf("DH a*B: %v", err)
	}
	ba, err := crypto.DH(bPriv, aPub)
	if err != nil {
		t.Fatalf("DH b*A: %v", err)
	}
	if string(ab) != string(ba) {
		t.Fatal("shared secrets differ")
	}
}

func TestB64_RoundTripAndPaddingTolerance(t *testing.T) {
	raw := []byte{0, 1, 2, 250, 251, 252}
	enc := crypto.B64(raw)

	dec, err := crypto.B64Decode(enc)
	if err != nil {
		t.Fatalf("B64Decode: %v", err)
	}
	if string(dec) != string(raw) {
		t.Fatal("round trip mismatch")
	}

	// Browsers sometimes pad; decoding must tolerate it.
	dec, err = crypto.B64Decode(enc + "==")
	if err != nil {
		t.Fatalf("B64Decode padded: %v", err)
	}
	if string(dec) != string(raw) {
		t.Fatal("padded round trip mismatch")
	}
}
