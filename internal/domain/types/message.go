package types

// NotificationMessage is one notification to be delivered to a user's devices.
// It is transient: constructed per send, serialized into the encrypted payload,
// and persisted only as a snapshot inside DeliveryAttempt records.
//
// Data carries opaque client-side fields (icon, badge, tag, sound, url, ...);
// this core never interprets them.
type NotificationMessage struct {
	Title      string         `json:"title"`
	Body       string         `json:"body"`
	Data       map[string]any `json:"data,omitempty"`
	Urgency    Urgency        `json:"urgency,omitempty"`
	TTLSeconds int            `json:"ttl_seconds,omitempty"`
}

// EncryptedPayload is the result of encrypting a message for one subscription:
// the full aes128gcm coded record (header included), plus the salt and server
// ephemeral public key that are also embedded in the header.
type EncryptedPayload struct {
	Ciphertext      []byte
	Salt            [16]byte
	ServerPublicKey P256Public
}
