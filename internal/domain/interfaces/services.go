package interfaces

import (
	"context"
	"time"

	domaintypes "pushkit/internal/domain/types"
)

// KeyService owns the VAPID signing pair and mints tokens from it.
type KeyService interface {
	// LoadOrCreate returns the persisted pair, generating and persisting a
	// fresh one only when none exists. A stored pair that fails the
	// public-equals-scalar-mult check is rejected, never regenerated.
	LoadOrCreate(ctx context.Context) (domaintypes.VapidKeyPair, error)
	// SignToken mints an ES256 VAPID token for the given push-service
	// origin. Expiry above 24h is clamped, not rejected.
	SignToken(audience string, expiry time.Duration, subject string) (token string, pub domaintypes.P256Public, err error)
}

// SubscriptionRegistry tracks per-user push subscriptions.
//
// Register is idempotent per endpoint: a device re-subscribing replaces its
// prior record. Invalidate is a monotonic removal and safe to call
// concurrently and redundantly from multiple delivery failures.
type SubscriptionRegistry interface {
	Register(ctx context.Context, userID domaintypes.UserID, sub domaintypes.PushSubscription) error
	// ListFor returns the user's subscriptions in insertion order; an empty
	// slice, not an error, when there are none.
	ListFor(ctx context.Context, userID domaintypes.UserID) ([]domaintypes.PushSubscription, error)
	Invalidate(ctx context.Context, endpoint domaintypes.Endpoint) error
}

// Dispatcher delivers notifications and records every outcome.
//
// Send never returns delivery failures as errors: the classification lives in
// the returned DeliveryAttempt so batch sends always complete with one record
// per targeted subscription.
type Dispatcher interface {
	Send(ctx context.Context, sub domaintypes.PushSubscription, msg domaintypes.NotificationMessage) domaintypes.DeliveryAttempt
	SendToAll(ctx context.Context, userID domaintypes.UserID, msg domaintypes.NotificationMessage) ([]domaintypes.DeliveryAttempt, error)
}
