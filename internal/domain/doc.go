// Package domain holds the core model of the push delivery subsystem: VAPID
// key material, push subscriptions, notification messages, delivery attempt
// records, and the interfaces the services are written against.
//
// Concrete types live in domain/types and interfaces in domain/interfaces;
// this package re-exports both so callers import a single path.
package domain
