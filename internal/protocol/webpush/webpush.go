package webpush

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"pushkit/internal/crypto"
	"pushkit/internal/domain"
)

const (
	// MaxPlaintext is the conservative per-message ceiling shared by the
	// major push services. Larger payloads are rejected locally, before
	// any key agreement or network call.
	MaxPlaintext = 4096

	saltLen = 16
	// AuthLen is the size of the subscriber auth secret.
	AuthLen = 16

	cekInfo   = "Content-Encoding: aes128gcm\x00"
	nonceInfo = "Content-Encoding: nonce\x00"
	keyInfo   = "WebPush: info\x00"

	// padDelimiter terminates the last (only) record of a coded message.
	padDelimiter = 0x02

	gcmTagLen   = 16
	gcmNonceLen = 12
	cekLen      = 16

	// minRecordSize is the smallest record size RFC 8188 allows a header
	// to declare. A last record may be shorter than declared, so tiny
	// messages clamp the field rather than pad.
	minRecordSize = 18
)

var (
	// ErrPayloadTooLarge means the serialized message exceeds MaxPlaintext.
	// Local and non-retryable.
	ErrPayloadTooLarge = errors.New("payload exceeds 4096-byte push limit")

	// ErrInvalidSubscriberKey means the subscription's p256dh or auth
	// material is malformed. Terminal for the subscription.
	ErrInvalidSubscriberKey = errors.New("invalid subscriber key material")

	// ErrBadCiphertext means a coded record could not be parsed or opened.
	ErrBadCiphertext = errors.New("malformed aes128gcm record")
)

// EncryptMessage serializes msg to JSON and encrypts it for sub.
//
// A fresh ephemeral key pair and salt are drawn on every call; identical
// inputs never produce identical ciphertexts.
func EncryptMessage(sub domain.PushSubscription, msg domain.NotificationMessage) (domain.EncryptedPayload, error) {
	pub, auth, err := SubscriberKeys(sub)
	if err != nil {
		return domain.EncryptedPayload{}, err
	}
	plaintext, err := json.Marshal(msg)
	if err != nil {
		return domain.EncryptedPayload{}, fmt.Errorf("serialize message: %w", err)
	}
	return Encrypt(pub, auth, plaintext)
}

// SubscriberKeys decodes and validates a subscription's key material.
func SubscriberKeys(sub domain.PushSubscription) (pub domain.P256Public, auth [AuthLen]byte, err error) {
	rawPub, err := crypto.B64Decode(sub.P256dh)
	if err != nil {
		return pub, auth, fmt.Errorf("%w: p256dh: %v", ErrInvalidSubscriberKey, err)
	}
	pub, err = crypto.ParsePoint(rawPub)
	if err != nil {
		return pub, auth, fmt.Errorf("%w: p256dh: %v", ErrInvalidSubscriberKey, err)
	}
	rawAuth, err := crypto.B64Decode(sub.Auth)
	if err != nil {
		return pub, auth, fmt.Errorf("%w: auth: %v", ErrInvalidSubscriberKey, err)
	}
	if len(rawAuth) != AuthLen {
		return pub, auth, fmt.Errorf("%w: auth is %d bytes, want %d", ErrInvalidSubscriberKey, len(rawAuth), AuthLen)
	}
	copy(auth[:], rawAuth)
	return pub, auth, nil
}

// Encrypt produces an RFC 8291 aes128gcm coded record for the subscriber.
//
// The message content encryption key and nonce are derived by HKDF-SHA-256
// from the ECDH secret between a per-message ephemeral P-256 pair and the
// subscriber's p256dh key, keyed by the subscriber's auth secret. The whole
// message is carried in a single record:
//
//	salt(16) || recordSize(4) || keyIDLen(1)=65 || ephemeralPublic(65) || ct
func Encrypt(subPub domain.P256Public, auth [AuthLen]byte, plaintext []byte) (domain.EncryptedPayload, error) {
	if len(plaintext) > MaxPlaintext {
		return domain.EncryptedPayload{}, ErrPayloadTooLarge
	}

	ephPriv, ephPub, err := crypto.GenerateP256()
	if err != nil {
		return domain.EncryptedPayload{}, err
	}
	var salt [saltLen]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return domain.EncryptedPayload{}, fmt.Errorf("draw salt: %w", err)
	}

	secret, err := crypto.DH(ephPriv, subPub)
	if err != nil {
		return domain.EncryptedPayload{}, fmt.Errorf("%w: %v", ErrInvalidSubscriberKey, err)
	}
	defer crypto.Wipe(secret)

	cek, nonce, err := deriveKeys(secret, auth[:], salt[:], subPub, ephPub)
	if err != nil {
		return domain.EncryptedPayload{}, err
	}
	defer crypto.Wipe(cek)

	aead, err := newAEAD(cek)
	if err != nil {
		return domain.EncryptedPayload{}, err
	}

	record := make([]byte, 0, len(plaintext)+1)
	record = append(record, plaintext...)
	record = append(record, padDelimiter)
	ct := aead.Seal(nil, nonce, record, nil)

	// Single record: the declared record size is the exact sealed length,
	// so the full MaxPlaintext ceiling stays encodable. Clamped to the
	// protocol floor for near-empty messages.
	rs := uint32(len(ct))
	if rs < minRecordSize {
		rs = minRecordSize
	}
	header := make([]byte, 0, saltLen+4+1+65)
	header = append(header, salt[:]...)
	header = binary.BigEndian.AppendUint32(header, rs)
	header = append(header, byte(len(ephPub)))
	header = append(header, ephPub.Slice()...)

	out := domain.EncryptedPayload{
		Ciphertext:      append(header, ct...),
		ServerPublicKey: ephPub,
	}
	copy(out.Salt[:], salt[:])
	return out, nil
}

// Decrypt is the inverse of Encrypt given the subscriber's private scalar.
// Tests and the mock push service use it; a real application server never
// holds the subscriber key.
func Decrypt(subPriv domain.P256Private, auth [AuthLen]byte, coded []byte) ([]byte, error) {
	const headerLen = saltLen + 4 + 1
	if len(coded) < headerLen {
		return nil, ErrBadCiphertext
	}
	salt := coded[:saltLen]
	keyIDLen := int(coded[saltLen+4])
	if keyIDLen != 65 || len(coded) < headerLen+keyIDLen {
		return nil, ErrBadCiphertext
	}
	ephPub, err := crypto.ParsePoint(coded[headerLen : headerLen+keyIDLen])
	if err != nil {
		return nil, ErrBadCiphertext
	}
	ct := coded[headerLen+keyIDLen:]

	subPub, err := crypto.DerivePublic(subPriv)
	if err != nil {
		return nil, err
	}
	secret, err := crypto.DH(subPriv, ephPub)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(secret)

	cek, nonce, err := deriveKeys(secret, auth[:], salt, subPub, ephPub)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(cek)

	aead, err := newAEAD(cek)
	if err != nil {
		return nil, err
	}
	record, err := aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return nil, ErrBadCiphertext
	}

	// Strip padding: zero bytes after the 0x02 delimiter of the last record.
	record = bytes.TrimRight(record, "\x00")
	if len(record) == 0 || record[len(record)-1] != padDelimiter {
		return nil, ErrBadCiphertext
	}
	return record[:len(record)-1], nil
}

// deriveKeys expands the ECDH secret into the content encryption key and
// nonce per RFC 8291 §3.3-3.4.
func deriveKeys(secret, auth, salt []byte, subPub, ephPub domain.P256Public) (cek, nonce []byte, err error) {
	info := make([]byte, 0, len(keyInfo)+2*65)
	info = append(info, keyInfo...)
	info = append(info, subPub.Slice()...)
	info = append(info, ephPub.Slice()...)

	ikm, err := expand(secret, auth, info, 32)
	if err != nil {
		return nil, nil, err
	}
	defer crypto.Wipe(ikm)

	if cek, err = expand(ikm, salt, []byte(cekInfo), cekLen); err != nil {
		return nil, nil, err
	}
	if nonce, err = expand(ikm, salt, []byte(nonceInfo), gcmNonceLen); err != nil {
		return nil, nil, err
	}
	return cek, nonce, nil
}

// expand runs one HKDF-SHA-256 extract-and-expand read.
func expand(secret, salt, info []byte, n int) ([]byte, error) {
	out := make([]byte, n)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, salt, info), out); err != nil {
		return nil, fmt.Errorf("hkdf: %w", err)
	}
	return out, nil
}

func newAEAD(cek []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(cek)
	if err != nil {
		return nil, fmt.Errorf("aes.NewCipher: %w", err)
	}
	return cipher.NewGCM(block)
}
