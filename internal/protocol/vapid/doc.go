// Package vapid builds Voluntary Application Server Identification tokens
// (RFC 8292) for Web Push requests.
//
// A token is an ES256-signed JWT over the push service origin (aud), an
// expiry capped at 24 hours (exp), and an operator contact URI (sub). The
// push service verifies it against the public key carried alongside in the
// Authorization header, which must match the key the subscription was
// created with.
package vapid
