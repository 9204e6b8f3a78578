package types

import "time"

// PushSubscription is the (endpoint, key material) triple a push service issued
// to one of a user's devices, as delivered by the browser's subscribe call.
//
// P256dh and Auth keep the base64url (unpadded) encoding they arrive in; the
// registry validates that they decode to a 65-byte uncompressed point and a
// 16-byte secret before accepting them.
type PushSubscription struct {
	Endpoint  Endpoint  `json:"endpoint"`
	P256dh    string    `json:"p256dh"`
	Auth      string    `json:"auth"`
	UserID    UserID    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
