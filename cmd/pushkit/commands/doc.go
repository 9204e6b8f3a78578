// Package commands defines the pushkit CLI and wires dependencies for subcommands.
//
// Commands
//
//   - vapid        Print (creating on first use) the VAPID public key
//   - subscribe    Register a browser push subscription for a user
//   - unsubscribe  Remove the subscription for an endpoint
//   - list         List a user's subscriptions
//   - send         Deliver a notification to every device of a user
//   - log          Show recent delivery attempts
//
// # Implementation
//
// The root command builds a dependency graph (record store, key service,
// registry, audit log, dispatcher) before any subcommand runs, so handlers
// share one app context. Records live under --home as flat JSON files, or in
// Redis when --redis is set.
package commands
