package vapid_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pushkit/internal/crypto"
	"pushkit/internal/domain"
	"pushkit/internal/protocol/vapid"
)

func verifyKey(pub domain.P256Public) *ecdsa.PublicKey {
	return &ecdsa.PublicKey{
		Curve: elliptic.P256(),
		X:     new(big.Int).SetBytes(pub[1:33]),
		Y:     new(big.Int).SetBytes(pub[33:65]),
	}
}

func TestSign_TokenVerifiesWithPublicKey(t *testing.T) {
	priv, pub, err := crypto.GenerateP256()
	if err != nil {
		t.Fatalf("GenerateP256: %v", err)
	}

	token, err := vapid.Sign(priv, "https://push.example.net", time.Hour, "mailto:ops@example.com")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (any, error) {
		return verifyKey(pub), nil
	}, jwt.WithValidMethods([]string{"ES256"}))
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["aud"] != "https://push.example.net" {
		t.Fatalf("aud = %v", claims["aud"])
	}
	if claims["sub"] != "mailto:ops@example.com" {
		t.Fatalf("sub = %v", claims["sub"])
	}
}

func TestSign_ClampsExpiryAt24Hours(t *testing.T) {
	priv, pub, err := crypto.GenerateP256()
	if err != nil {
		t.Fatalf("GenerateP256: %v", err)
	}

	token, err := vapid.Sign(priv, "https://push.example.net", 72*time.Hour, "mailto:ops@example.com")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (any, error) {
		return verifyKey(pub), nil
	}, jwt.WithValidMethods([]string{"ES256"}))
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil {
		t.Fatalf("exp claim: %v", err)
	}
	if limit := time.Now().Add(vapid.MaxExpiry + time.Minute); exp.After(limit) {
		t.Fatalf("exp %v beyond the 24h protocol cap", exp)
	}
}

func TestAudience(t *testing.T) {
	aud, err := vapid.Audience("https://fcm.googleapis.com/fcm/send/abc123")
	if err != nil {
		t.Fatalf("Audience: %v", err)
	}
	if aud != "https://fcm.googleapis.com" {
		t.Fatalf("aud = %q", aud)
	}

	if _, err := vapid.Audience("not a url"); err == nil {
		t.Fatal("want error for endpoint without origin")
	}
}

func TestAuthorizationHeader_Shape(t *testing.T) {
	priv, pub, err := crypto.GenerateP256()
	if err != nil {
		t.Fatalf("GenerateP256: %v", err)
	}
	token, err := vapid.Sign(priv, "https://push.example.net", time.Hour, "mailto:ops@example.com")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	h := vapid.AuthorizationHeader(token, pub)
	if !strings.HasPrefix(h, "vapid t=") || !strings.Contains(h, ", k="+crypto.B64(pub.Slice())) {
		t.Fatalf("malformed header: %s", h)
	}
}
