package transport

import (
	"context"
	"sync"
	"time"

	"pushkit/internal/domain"
)

// Step is one scripted transport result.
type Step struct {
	Resp domain.PushResponse
	Err  error
	// Delay holds the response back, honoring context cancellation, so
	// tests can exercise deadline handling.
	Delay time.Duration
}

// Fixture is a deterministic PushTransport for tests. Steps scripted for a
// specific endpoint take priority; otherwise the shared script replays in
// order. After both run out it keeps answering 201. Every request is
// recorded.
type Fixture struct {
	mu          sync.Mutex
	script      []Step
	perEndpoint map[domain.Endpoint][]Step
	requests    []domain.PushRequest
}

// NewFixture builds a fixture replaying the given shared steps.
func NewFixture(steps ...Step) *Fixture { return &Fixture{script: steps} }

// Status is shorthand for a step answering with an HTTP status.
func Status(code int) Step {
	return Step{Resp: domain.PushResponse{StatusCode: code}}
}

// Script queues steps for one endpoint. Concurrent fan-out reaches devices
// in no particular order, so per-endpoint steps are the deterministic way
// to script a multi-device delivery.
func (f *Fixture) Script(endpoint domain.Endpoint, steps ...Step) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.perEndpoint == nil {
		f.perEndpoint = make(map[domain.Endpoint][]Step)
	}
	f.perEndpoint[endpoint] = append(f.perEndpoint[endpoint], steps...)
}

func (f *Fixture) Deliver(ctx context.Context, req domain.PushRequest) (domain.PushResponse, error) {
	if err := ctx.Err(); err != nil {
		return domain.PushResponse{}, err
	}
	f.mu.Lock()
	f.requests = append(f.requests, req)
	step := Status(201)
	if steps, ok := f.perEndpoint[req.Endpoint]; ok && len(steps) > 0 {
		step = steps[0]
		f.perEndpoint[req.Endpoint] = steps[1:]
	} else if len(f.script) > 0 {
		step = f.script[0]
		f.script = f.script[1:]
	}
	f.mu.Unlock()

	if step.Delay > 0 {
		select {
		case <-ctx.Done():
			return domain.PushResponse{}, ctx.Err()
		case <-time.After(step.Delay):
		}
	}
	return step.Resp, step.Err
}

// Requests returns a copy of everything delivered so far.
func (f *Fixture) Requests() []domain.PushRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.PushRequest(nil), f.requests...)
}

// Calls returns how many deliveries were made.
func (f *Fixture) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// Compile-time assertion that Fixture implements domain.PushTransport.
var _ domain.PushTransport = (*Fixture)(nil)
