package crypto

import (
	"encoding/base64"
	"strings"
)

// B64 returns unpadded URL-safe base64, the encoding Web Push uses for key
// material on the wire.
func B64(b []byte) string { return base64.RawURLEncoding.EncodeToString(b) }

// B64Decode decodes URL-safe base64 with or without padding; browsers are
// inconsistent about which form subscription keys arrive in.
func B64Decode(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
}
