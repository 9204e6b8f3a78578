// Package webpush implements the Web Push message encryption scheme
// (RFC 8291, content coding aes128gcm).
//
// # Overview
//
// A push service only ever sees ciphertext: the application server encrypts
// each message against the subscription's public key material so that only
// the subscribed browser can read it. Per message the sender:
//
//  1. Generates an ephemeral P-256 key pair and a random 16-byte salt.
//  2. Computes the ECDH secret between the ephemeral private key and the
//     subscriber's p256dh public key.
//  3. Expands that secret with HKDF-SHA-256, keyed by the subscriber's
//     16-byte auth secret and both public keys, into a 16-byte content
//     encryption key and a 12-byte nonce.
//  4. Appends the 0x02 padding delimiter and seals with AES-128-GCM.
//  5. Prepends the coded header (salt, record size, ephemeral public key).
//
// Ephemeral key and salt reuse across messages would break forward secrecy;
// Encrypt draws fresh values on every call.
//
// # Limits
//
// Push services cap message size; 4096 bytes is the safe ceiling and is
// enforced locally (ErrPayloadTooLarge) before any crypto or network work.
//
// # Errors
//
// ErrInvalidSubscriberKey marks subscriptions whose key material cannot be
// used; the dispatcher treats it as terminal. ErrBadCiphertext is returned by
// Decrypt for records that fail parsing or authentication.
package webpush
