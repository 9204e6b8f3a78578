package interfaces

import (
	"context"

	domaintypes "pushkit/internal/domain/types"
)

// RecordStore is the flat key-to-bytes persistence boundary. The key manager,
// registry and audit log all consume it; nothing here assumes what sits
// behind it (file, Redis, memory).
type RecordStore interface {
	// Load returns the stored bytes for key. ok is false when the key has
	// never been written; that is not an error.
	Load(ctx context.Context, key string) (data []byte, ok bool, err error)
	Save(ctx context.Context, key string, data []byte) error
}

// AttemptLog is the append-only sink for delivery audit records.
type AttemptLog interface {
	Append(ctx context.Context, attempt domaintypes.DeliveryAttempt) error
	// Recent returns up to n of the newest records, newest first.
	Recent(ctx context.Context, n int) ([]domaintypes.DeliveryAttempt, error)
}
