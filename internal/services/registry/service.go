package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"

	"pushkit/internal/crypto"
	"pushkit/internal/domain"
	"pushkit/internal/protocol/webpush"
)

// recordKey matches the push_subscriptions.json file the original flat-file
// deployment kept.
const recordKey = "push_subscriptions"

// ErrInvalidSubscription is returned for subscriptions whose endpoint or key
// material fails validation. Caller error, never retried.
var ErrInvalidSubscription = errors.New("invalid push subscription")

// Service is the subscription registry. It is the only shared mutable state
// in the core; a single mutex makes every Register/Invalidate atomic per
// endpoint, which is all the delivery path needs (Register is
// last-writer-wins, Invalidate commutes with itself).
type Service struct {
	store domain.RecordStore
	log   *zap.Logger

	mu sync.Mutex
}

// New returns a registry backed by the given record store.
func New(store domain.RecordStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, log: log}
}

// Register validates and stores a subscription for userID.
//
// Re-registering an endpoint is how devices rotate their keys, so an existing
// record for the same endpoint is replaced in place. An endpoint identifies
// exactly one device: if another user currently holds it, their record is
// dropped first.
func (s *Service) Register(ctx context.Context, userID domain.UserID, sub domain.PushSubscription) error {
	if err := validate(sub); err != nil {
		return err
	}
	sub.UserID = userID
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for owner, subs := range all {
		for i := range subs {
			if subs[i].Endpoint != sub.Endpoint {
				continue
			}
			if owner == userID {
				subs[i] = sub
				replaced = true
			} else {
				all[owner] = append(subs[:i:i], subs[i+1:]...)
				s.log.Info("endpoint moved between users",
					zap.String("endpoint", crypto.Fingerprint([]byte(sub.Endpoint))),
					zap.String("from", string(owner)),
					zap.String("to", string(userID)))
			}
			break
		}
	}
	if !replaced {
		all[userID] = append(all[userID], sub)
	}

	if err := s.save(ctx, all); err != nil {
		return err
	}
	s.log.Info("subscription registered",
		zap.String("user", string(userID)),
		zap.String("endpoint", crypto.Fingerprint([]byte(sub.Endpoint))))
	return nil
}

// ListFor returns the user's subscriptions in insertion order. No
// subscriptions is an empty slice, not an error.
func (s *Service) ListFor(ctx context.Context, userID domain.UserID) ([]domain.PushSubscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return append([]domain.PushSubscription(nil), all[userID]...), nil
}

// Invalidate removes the subscription holding endpoint, wherever it lives.
// Removing an absent endpoint is a no-op: concurrent delivery failures race
// to invalidate the same subscription and both must succeed.
func (s *Service) Invalidate(ctx context.Context, endpoint domain.Endpoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return err
	}
	for owner, subs := range all {
		for i := range subs {
			if subs[i].Endpoint != endpoint {
				continue
			}
			all[owner] = append(subs[:i:i], subs[i+1:]...)
			if err := s.save(ctx, all); err != nil {
				return err
			}
			s.log.Info("subscription invalidated",
				zap.String("user", string(owner)),
				zap.String("endpoint", crypto.Fingerprint([]byte(endpoint))))
			return nil
		}
	}
	return nil
}

func validate(sub domain.PushSubscription) error {
	u, err := url.Parse(string(sub.Endpoint))
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return fmt.Errorf("%w: endpoint %q is not a valid URL", ErrInvalidSubscription, sub.Endpoint)
	}
	if _, _, err := webpush.SubscriberKeys(sub); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSubscription, err)
	}
	return nil
}

func (s *Service) load(ctx context.Context) (map[domain.UserID][]domain.PushSubscription, error) {
	raw, ok, err := s.store.Load(ctx, recordKey)
	if err != nil {
		return nil, fmt.Errorf("load subscriptions: %w", err)
	}
	all := make(map[domain.UserID][]domain.PushSubscription)
	if !ok {
		return all, nil
	}
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, fmt.Errorf("decode subscriptions: %w", err)
	}
	return all, nil
}

func (s *Service) save(ctx context.Context, all map[domain.UserID][]domain.PushSubscription) error {
	// Drop users with no subscriptions left so the record does not grow
	// a tail of empty lists.
	for owner, subs := range all {
		if len(subs) == 0 {
			delete(all, owner)
		}
	}
	raw, err := json.Marshal(all)
	if err != nil {
		return err
	}
	if err := s.store.Save(ctx, recordKey, raw); err != nil {
		return fmt.Errorf("save subscriptions: %w", err)
	}
	return nil
}

// Compile-time assertion that Service implements domain.SubscriptionRegistry.
var _ domain.SubscriptionRegistry = (*Service)(nil)
