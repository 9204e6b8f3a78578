// Package dispatch delivers encrypted notifications to push services.
//
// # Flow
//
// Send encrypts the message for the target subscription (webpush), signs a
// VAPID token scoped to the endpoint origin (vapid via the key service),
// posts through the PushTransport, and classifies the response:
//
//	2xx      Delivered
//	404/410  Expired        subscription invalidated
//	429      Throttled      retried with backoff
//	5xx/net  TransientError retried with backoff
//	4xx      PermanentError subscription kept
//
// Local failures (oversized payload, unusable subscriber keys) become
// PermanentError without any network call; unusable keys additionally
// invalidate the subscription.
//
// Retries are a bounded loop with exponential backoff and jitter under one
// overall per-send deadline. The final state is always recorded in the
// audit log and returned; a message is never silently dropped.
//
// SendToAll fans out across a user's devices concurrently under a worker
// bound, one independent Send per subscription.
package dispatch
