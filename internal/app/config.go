package app

import (
	"net/http"
	"time"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home     string // data directory for the file store, e.g. $HOME/.pushkit
	RedisURL string // optional; when set, records live in Redis instead of files
	Subject  string // operator contact URI claimed in VAPID tokens (mailto: or https:)

	MaxAttempts int           // network calls per delivery, retries included
	SendTimeout time.Duration // overall deadline per delivery
	Parallelism int           // fan-out bound
	DefaultTTL  int           // seconds a push service should hold a message

	Debug bool
	HTTP  *http.Client // optional; defaults inside the transport
}
