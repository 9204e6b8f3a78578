// Package auditlog keeps the append-only record of delivery attempts used
// for debugging why a notification did or did not reach a device.
package auditlog
