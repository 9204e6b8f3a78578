// Package app wires application dependencies for the CLI.
//
// It builds the concrete record store, key service, registry, audit log and
// dispatcher from Config, exposing them via the Wire struct for commands and
// embedding callers (the reminder scheduler, the web layer) to use.
package app
