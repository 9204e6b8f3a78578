package types

import "time"

// PushRequest is one wire-level Web Push delivery: an HTTPS POST of the coded
// record to the subscription endpoint, authorized by a VAPID token.
type PushRequest struct {
	Endpoint Endpoint
	// Body is the aes128gcm coded record.
	Body []byte
	// Authorization is the full header value, "vapid t=<jwt>, k=<pubkey>".
	Authorization string
	TTLSeconds    int
	Urgency       Urgency
	// Topic, when set, lets the push service collapse undelivered messages.
	Topic string
}

// PushResponse is the push service's answer to a PushRequest.
type PushResponse struct {
	StatusCode int
	// RetryAfter is the parsed Retry-After header, zero when absent.
	RetryAfter time.Duration
}
