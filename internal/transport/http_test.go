package transport_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pushkit/internal/domain"
	"pushkit/internal/transport"
)

func TestDeliver_SetsWebPushHeaders(t *testing.T) {
	var method string
	var header http.Header
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		header = r.Header.Clone()
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	tr := transport.NewHTTP(srv.Client())
	resp, err := tr.Deliver(context.Background(), domain.PushRequest{
		Endpoint:      domain.Endpoint(srv.URL + "/send/abc"),
		Body:          []byte{0x01, 0x02, 0x03},
		Authorization: "vapid t=token, k=key",
		TTLSeconds:    3600,
		Urgency:       domain.UrgencyHigh,
		Topic:         "reminder-7",
	})
	if err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	if method != http.MethodPost {
		t.Fatalf("method = %s", method)
	}
	headers := map[string]string{
		"Content-Type":     "application/octet-stream",
		"Content-Encoding": "aes128gcm",
		"TTL":              "3600",
		"Urgency":          "high",
		"Authorization":    "vapid t=token, k=key",
		"Topic":            "reminder-7",
	}
	for name, want := range headers {
		if v := header.Get(name); v != want {
			t.Errorf("%s = %q, want %q", name, v, want)
		}
	}
	if string(body) != "\x01\x02\x03" {
		t.Fatalf("body = %x", body)
	}
}

func TestDeliver_OmitsEmptyTopic(t *testing.T) {
	var header http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Clone()
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	tr := transport.NewHTTP(srv.Client())
	if _, err := tr.Deliver(context.Background(), domain.PushRequest{
		Endpoint:   domain.Endpoint(srv.URL),
		TTLSeconds: 60,
		Urgency:    domain.UrgencyNormal,
	}); err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if _, present := header["Topic"]; present {
		t.Fatal("empty topic still sent")
	}
}

func TestDeliver_ErrorStatusIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "120")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	tr := transport.NewHTTP(srv.Client())
	resp, err := tr.Deliver(context.Background(), domain.PushRequest{
		Endpoint:   domain.Endpoint(srv.URL),
		TTLSeconds: 60,
		Urgency:    domain.UrgencyNormal,
	})
	if err != nil {
		t.Fatalf("an HTTP status must not surface as an error: %v", err)
	}
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if resp.RetryAfter != 2*time.Minute {
		t.Fatalf("retry-after = %s", resp.RetryAfter)
	}
}

func TestDeliver_RetryAfterHTTPDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", time.Now().Add(90*time.Second).UTC().Format(http.TimeFormat))
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	tr := transport.NewHTTP(srv.Client())
	resp, err := tr.Deliver(context.Background(), domain.PushRequest{
		Endpoint:   domain.Endpoint(srv.URL),
		TTLSeconds: 60,
		Urgency:    domain.UrgencyNormal,
	})
	if err != nil {
		t.Fatalf("deliver: %v", err)
	}
	// HTTP dates have one-second resolution; allow slack on both sides.
	if resp.RetryAfter < 85*time.Second || resp.RetryAfter > 95*time.Second {
		t.Fatalf("retry-after = %s, want about 90s", resp.RetryAfter)
	}
}

func TestDeliver_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	tr := transport.NewHTTP(nil)
	if _, err := tr.Deliver(context.Background(), domain.PushRequest{
		Endpoint:   domain.Endpoint(url),
		TTLSeconds: 60,
		Urgency:    domain.UrgencyNormal,
	}); err == nil {
		t.Fatal("want a network error for a closed server")
	}
}

func TestDeliver_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	tr := transport.NewHTTP(srv.Client())
	if _, err := tr.Deliver(ctx, domain.PushRequest{
		Endpoint:   domain.Endpoint(srv.URL),
		TTLSeconds: 60,
		Urgency:    domain.UrgencyNormal,
	}); err == nil {
		t.Fatal("want an error once the context deadline passes")
	}
}
