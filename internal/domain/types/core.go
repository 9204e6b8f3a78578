package types

// UserID identifies the owner of one or more push subscriptions. The web layer
// authenticates users before calling into this core, so the value is opaque here.
type UserID string

// Endpoint is the push-service URL a subscription delivers to. An endpoint
// uniquely identifies one subscribed device across all users.
type Endpoint string

// Urgency is the Web Push urgency header value attached to a delivery.
type Urgency string

const (
	UrgencyVeryLow Urgency = "very-low"
	UrgencyLow     Urgency = "low"
	UrgencyNormal  Urgency = "normal"
	UrgencyHigh    Urgency = "high"
)

// Valid reports whether u is one of the four protocol urgency levels.
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyVeryLow, UrgencyLow, UrgencyNormal, UrgencyHigh:
		return true
	}
	return false
}
