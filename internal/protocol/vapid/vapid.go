package vapid

import (
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pushkit/internal/crypto"
	"pushkit/internal/domain"
)

// MaxExpiry is the protocol ceiling on token lifetime (RFC 8292 §2).
// Longer requested expiries are clamped, not rejected.
const MaxExpiry = 24 * time.Hour

// DefaultExpiry is used when the caller passes a non-positive expiry.
const DefaultExpiry = 12 * time.Hour

// Sign mints a compact ES256 JWT identifying this server to a push service.
//
// audience is the push service origin (scheme://host), subject a contact URI
// (mailto: or https:) the service can use to reach the operator.
func Sign(priv domain.P256Private, audience string, expiry time.Duration, subject string) (string, error) {
	if expiry <= 0 {
		expiry = DefaultExpiry
	}
	if expiry > MaxExpiry {
		expiry = MaxExpiry
	}
	key, err := crypto.SigningKey(priv)
	if err != nil {
		return "", err
	}
	claims := jwt.MapClaims{
		"aud": audience,
		"exp": time.Now().Add(expiry).Unix(),
		"sub": subject,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodES256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("sign vapid token: %w", err)
	}
	return token, nil
}

// Audience extracts the push service origin from a subscription endpoint.
func Audience(endpoint domain.Endpoint) (string, error) {
	u, err := url.Parse(string(endpoint))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("endpoint %q has no valid origin", endpoint)
	}
	return u.Scheme + "://" + u.Host, nil
}

// AuthorizationHeader formats the RFC 8292 header carrying the signed token
// and the uncompressed public key it verifies against.
func AuthorizationHeader(token string, pub domain.P256Public) string {
	return "vapid t=" + token + ", k=" + crypto.B64(pub.Slice())
}
