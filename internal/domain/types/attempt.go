package types

import "time"

// Outcome is the terminal state of one delivery attempt.
type Outcome string

const (
	// OutcomeDelivered means the push service accepted the message (2xx).
	OutcomeDelivered Outcome = "delivered"
	// OutcomeExpired means the push service reported the endpoint gone
	// (404/410); the subscription is invalidated.
	OutcomeExpired Outcome = "expired"
	// OutcomeThrottled means the push service rate-limited us (429) and
	// retries were exhausted.
	OutcomeThrottled Outcome = "throttled"
	// OutcomeTransient means a 5xx, network failure, or overall deadline
	// expiry, after retries were exhausted.
	OutcomeTransient Outcome = "transient_error"
	// OutcomePermanent means a non-retryable failure: any other 4xx, or a
	// local encoding failure before the network was touched. The
	// subscription is left intact since the cause may be payload-specific.
	OutcomePermanent Outcome = "permanent_error"
)

// Retryable reports whether the outcome permits another attempt.
func (o Outcome) Retryable() bool {
	return o == OutcomeThrottled || o == OutcomeTransient
}

// DeliveryAttempt is one append-only audit record of a delivery to a single
// subscription. Records are never mutated or deleted by this core.
type DeliveryAttempt struct {
	ID       string              `json:"id"`
	Endpoint Endpoint            `json:"endpoint"`
	UserID   UserID              `json:"user_id"`
	Message  NotificationMessage `json:"message"`
	Outcome  Outcome             `json:"outcome"`
	// HTTPStatus is the status of the final network call, 0 when no call
	// was made (local failure) or the call itself failed.
	HTTPStatus int `json:"http_status,omitempty"`
	// Calls counts the network calls made across retries.
	Calls int       `json:"calls"`
	Error string    `json:"error,omitempty"`
	At    time.Time `json:"at"`
}
