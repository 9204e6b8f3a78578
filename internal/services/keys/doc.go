// Package keys manages the VAPID signing pair: generation, persistence with a
// load-time consistency check, and token minting.
//
// The pair behaves like process-wide singleton state but is modelled as an
// explicitly constructed value: load once at startup, inject into whoever
// needs it, never mutate. Key rotation is an operator action (replace the
// stored pair and restart), not something this service does on its own.
package keys
