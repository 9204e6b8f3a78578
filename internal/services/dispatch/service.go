package dispatch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pushkit/internal/crypto"
	"pushkit/internal/domain"
	"pushkit/internal/protocol/vapid"
	"pushkit/internal/protocol/webpush"
)

// Config tunes the delivery policy.
type Config struct {
	// MaxAttempts bounds network calls per Send, retries included.
	MaxAttempts int
	// BaseBackoff is the pause before the first retry; it doubles per
	// attempt with jitter, capped at MaxBackoff.
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
	// SendTimeout is the overall deadline for one Send: it covers every
	// network call and backoff pause collectively, so a pathological
	// endpoint cannot stall a dispatch indefinitely.
	SendTimeout time.Duration
	// Parallelism bounds concurrent deliveries during fan-out.
	Parallelism int
	// Subject is the operator contact URI claimed in VAPID tokens.
	Subject string
	// TokenExpiry is the VAPID token lifetime (clamped at 24h downstream).
	TokenExpiry time.Duration
	// DefaultTTL applies when a message does not set its own TTL.
	DefaultTTL int
}

func (c Config) withDefaults() Config {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.BaseBackoff <= 0 {
		c.BaseBackoff = 500 * time.Millisecond
	}
	if c.MaxBackoff <= 0 {
		c.MaxBackoff = 30 * time.Second
	}
	if c.SendTimeout <= 0 {
		c.SendTimeout = 2 * time.Minute
	}
	if c.Parallelism <= 0 {
		c.Parallelism = 4
	}
	if c.TokenExpiry <= 0 {
		c.TokenExpiry = vapid.DefaultExpiry
	}
	if c.DefaultTTL <= 0 {
		c.DefaultTTL = 3600
	}
	return c
}

// Service is the delivery dispatcher: it encrypts, authorizes, sends,
// classifies, retries, invalidates gone endpoints, and records every outcome.
type Service struct {
	keys      domain.KeyService
	registry  domain.SubscriptionRegistry
	transport domain.PushTransport
	attempts  domain.AttemptLog
	log       *zap.Logger
	cfg       Config
}

// New wires a dispatcher. transport decides whether deliveries are real
// HTTPS calls or a test fixture; the dispatch logic itself has no modes.
func New(
	keys domain.KeyService,
	registry domain.SubscriptionRegistry,
	transport domain.PushTransport,
	attempts domain.AttemptLog,
	log *zap.Logger,
	cfg Config,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		keys:      keys,
		registry:  registry,
		transport: transport,
		attempts:  attempts,
		log:       log,
		cfg:       cfg.withDefaults(),
	}
}

// Send delivers one message to one subscription and returns the attempt
// record. Delivery failures are carried in the record, never as a panic or
// error value, so callers batching sends always get one record per target.
func (s *Service) Send(ctx context.Context, sub domain.PushSubscription, msg domain.NotificationMessage) domain.DeliveryAttempt {
	att := domain.DeliveryAttempt{
		ID:       uuid.NewString(),
		Endpoint: sub.Endpoint,
		UserID:   sub.UserID,
		Message:  msg,
		At:       time.Now().UTC(),
	}

	req, err := s.buildRequest(sub, msg)
	if err != nil {
		// Local failure: no network call was made.
		att.Outcome = domain.OutcomePermanent
		att.Error = err.Error()
		if errors.Is(err, webpush.ErrInvalidSubscriberKey) {
			// Unusable key material is subscription-level, not
			// payload-level: drop the subscription.
			s.invalidate(ctx, sub.Endpoint)
		}
		s.record(ctx, &att)
		return att
	}

	att.Outcome, att.HTTPStatus, att.Calls, att.Error = s.deliver(ctx, req)
	if att.Outcome == domain.OutcomeExpired {
		s.invalidate(ctx, sub.Endpoint)
	}
	s.record(ctx, &att)
	return att
}

// SendToAll fans one message out to every subscription of a user. Deliveries
// run concurrently under the parallelism bound and independently: one
// device's permanent failure never blocks the others. Results preserve
// ListFor's order, one record per subscription.
func (s *Service) SendToAll(ctx context.Context, userID domain.UserID, msg domain.NotificationMessage) ([]domain.DeliveryAttempt, error) {
	subs, err := s.registry.ListFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	results := make([]domain.DeliveryAttempt, len(subs))

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.cfg.Parallelism)
	for i, sub := range subs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = s.Send(ctx, sub, msg)
		}()
	}
	wg.Wait()
	return results, nil
}

// buildRequest encrypts the message for the subscription and attaches the
// VAPID authorization for its endpoint's origin.
func (s *Service) buildRequest(sub domain.PushSubscription, msg domain.NotificationMessage) (domain.PushRequest, error) {
	payload, err := webpush.EncryptMessage(sub, msg)
	if err != nil {
		return domain.PushRequest{}, err
	}
	audience, err := vapid.Audience(sub.Endpoint)
	if err != nil {
		return domain.PushRequest{}, err
	}
	token, pub, err := s.keys.SignToken(audience, s.cfg.TokenExpiry, s.cfg.Subject)
	if err != nil {
		return domain.PushRequest{}, err
	}

	ttl := msg.TTLSeconds
	if ttl <= 0 {
		ttl = s.cfg.DefaultTTL
	}
	urgency := msg.Urgency
	if !urgency.Valid() {
		urgency = domain.UrgencyNormal
	}
	return domain.PushRequest{
		Endpoint:      sub.Endpoint,
		Body:          payload.Ciphertext,
		Authorization: vapid.AuthorizationHeader(token, pub),
		TTLSeconds:    ttl,
		Urgency:       urgency,
	}, nil
}

// deliver runs the bounded retry loop for one request.
//
// Per attempt: Pending -> {Delivered | Expired | Throttled | TransientError |
// PermanentError}. Throttled and TransientError re-enter the loop until
// MaxAttempts or the overall deadline; the final state is recorded as-is.
func (s *Service) deliver(parent context.Context, req domain.PushRequest) (outcome domain.Outcome, status, calls int, errMsg string) {
	ctx, cancel := context.WithTimeout(parent, s.cfg.SendTimeout)
	defer cancel()

	for attempt := 1; ; attempt++ {
		var retryAfter time.Duration

		resp, err := s.transport.Deliver(ctx, req)
		calls++
		switch {
		case err != nil && ctx.Err() != nil:
			// Overall deadline elapsed mid-call: abandon the attempt.
			return domain.OutcomeTransient, 0, calls, "send deadline elapsed: " + err.Error()
		case err != nil:
			outcome, status, errMsg = domain.OutcomeTransient, 0, err.Error()
		default:
			outcome, status, errMsg = classify(resp.StatusCode), resp.StatusCode, ""
			retryAfter = resp.RetryAfter
		}

		if !outcome.Retryable() || attempt >= s.cfg.MaxAttempts {
			return outcome, status, calls, errMsg
		}

		wait := s.backoff(attempt, retryAfter)
		select {
		case <-ctx.Done():
			return domain.OutcomeTransient, status, calls, "send deadline elapsed during backoff"
		case <-time.After(wait):
		}
	}
}

// classify maps a push-service HTTP status onto the outcome table.
func classify(status int) domain.Outcome {
	switch {
	case status >= 200 && status < 300:
		return domain.OutcomeDelivered
	case status == 404 || status == 410:
		return domain.OutcomeExpired
	case status == 429:
		return domain.OutcomeThrottled
	case status >= 500:
		return domain.OutcomeTransient
	default:
		// Remaining 4xx: the payload or headers were rejected. The
		// subscription stays; the cause may be message-specific.
		return domain.OutcomePermanent
	}
}

func (s *Service) invalidate(ctx context.Context, endpoint domain.Endpoint) {
	if err := s.registry.Invalidate(ctx, endpoint); err != nil {
		s.log.Error("invalidate subscription",
			zap.String("endpoint", crypto.Fingerprint([]byte(endpoint))),
			zap.Error(err))
	}
}

// record appends to the audit log and emits the structured delivery line.
// Audit failures are logged, not propagated: the caller still gets the
// delivery outcome.
func (s *Service) record(ctx context.Context, att *domain.DeliveryAttempt) {
	if err := s.attempts.Append(ctx, *att); err != nil {
		s.log.Error("append delivery attempt", zap.String("id", att.ID), zap.Error(err))
	}
	s.log.Info("delivery attempt",
		zap.String("id", att.ID),
		zap.String("user", string(att.UserID)),
		zap.String("endpoint", crypto.Fingerprint([]byte(att.Endpoint))),
		zap.String("outcome", string(att.Outcome)),
		zap.Int("status", att.HTTPStatus),
		zap.Int("calls", att.Calls))
}

// Compile-time assertion that Service implements domain.Dispatcher.
var _ domain.Dispatcher = (*Service)(nil)
