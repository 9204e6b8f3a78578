// Package main runs an in-memory mock push service used during development
// and tests.
//
// On startup it generates a subscriber key pair and auth secret and prints a
// subscription JSON ready for `pushkit subscribe`. Every POST under /push/ is
// decrypted with that key and logged instead of being shown on a device, so
// the whole pipeline — registration, encryption, VAPID headers, delivery,
// classification — can be exercised end to end without a browser.
//
// The -status flag forces the answer code, which makes the dispatcher's
// expiry (410), throttle (429) and retry (5xx) paths easy to poke at by hand.
//
// All state is held in memory and lost on process exit.
package main
