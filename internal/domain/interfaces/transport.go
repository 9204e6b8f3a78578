package interfaces

import (
	"context"

	domaintypes "pushkit/internal/domain/types"
)

// PushTransport performs one wire-level delivery to a push service.
//
// Implementations return an error only for network-level failure; an HTTP
// response of any status is a successful transport round trip and is
// classified by the dispatcher, not here.
type PushTransport interface {
	Deliver(ctx context.Context, req domaintypes.PushRequest) (domaintypes.PushResponse, error)
}
