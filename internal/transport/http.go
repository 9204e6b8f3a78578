package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"pushkit/internal/domain"
)

// HTTPTransport delivers Web Push requests over HTTPS.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTP wraps an HTTP client; nil gets a client with a fallback timeout.
// The per-send context normally carries the effective deadline.
func NewHTTP(client *http.Client) *HTTPTransport {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPTransport{client: client}
}

// Deliver posts one coded record to the subscription endpoint with the
// standard Web Push headers. Any HTTP status is a successful round trip;
// only network-level failure returns an error.
func (t *HTTPTransport) Deliver(ctx context.Context, req domain.PushRequest) (domain.PushResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, string(req.Endpoint), bytes.NewReader(req.Body))
	if err != nil {
		return domain.PushResponse{}, fmt.Errorf("build push request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/octet-stream")
	httpReq.Header.Set("Content-Encoding", "aes128gcm")
	httpReq.Header.Set("TTL", strconv.Itoa(req.TTLSeconds))
	httpReq.Header.Set("Urgency", string(req.Urgency))
	httpReq.Header.Set("Authorization", req.Authorization)
	if req.Topic != "" {
		httpReq.Header.Set("Topic", req.Topic)
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return domain.PushResponse{}, err
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused; the body carries nothing we
	// classify on.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	return domain.PushResponse{
		StatusCode: resp.StatusCode,
		RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
	}, nil
}

// parseRetryAfter handles both delta-seconds and HTTP-date forms; zero when
// absent or unparseable.
func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}

// Compile-time assertion that HTTPTransport implements domain.PushTransport.
var _ domain.PushTransport = (*HTTPTransport)(nil)
