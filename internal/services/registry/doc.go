// Package registry tracks browser push subscriptions per user.
//
// A user has one subscription per device; an endpoint belongs to exactly one
// subscription system-wide. Registration is idempotent per endpoint because
// browsers re-subscribe with fresh keys periodically, and invalidation is a
// commuting removal so racing delivery failures can both report an endpoint
// gone.
package registry
