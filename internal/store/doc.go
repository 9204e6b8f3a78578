// Package store provides RecordStore implementations: a flat-file store with
// atomic writes, a Redis-backed store, and an in-memory store for tests.
//
// The record store is a deliberately small key-to-bytes boundary; the key
// manager, subscription registry and audit log layer their own encodings on
// top of it.
package store
