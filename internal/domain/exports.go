package domain

import (
	interfaces "pushkit/internal/domain/interfaces"
	types "pushkit/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	UserID              = types.UserID
	Endpoint            = types.Endpoint
	Urgency             = types.Urgency
	P256Private         = types.P256Private
	P256Public          = types.P256Public
	VapidKeyPair        = types.VapidKeyPair
	PushSubscription    = types.PushSubscription
	NotificationMessage = types.NotificationMessage
	EncryptedPayload    = types.EncryptedPayload
	Outcome             = types.Outcome
	DeliveryAttempt     = types.DeliveryAttempt
	PushRequest         = types.PushRequest
	PushResponse        = types.PushResponse
)

const (
	UrgencyVeryLow = types.UrgencyVeryLow
	UrgencyLow     = types.UrgencyLow
	UrgencyNormal  = types.UrgencyNormal
	UrgencyHigh    = types.UrgencyHigh

	OutcomeDelivered = types.OutcomeDelivered
	OutcomeExpired   = types.OutcomeExpired
	OutcomeThrottled = types.OutcomeThrottled
	OutcomeTransient = types.OutcomeTransient
	OutcomePermanent = types.OutcomePermanent
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	RecordStore          = interfaces.RecordStore
	AttemptLog           = interfaces.AttemptLog
	KeyService           = interfaces.KeyService
	SubscriptionRegistry = interfaces.SubscriptionRegistry
	Dispatcher           = interfaces.Dispatcher
	PushTransport        = interfaces.PushTransport
)
