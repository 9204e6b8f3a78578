package auditlog

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"pushkit/internal/domain"
)

// recordKey names the audit record in the store.
const recordKey = "notification_log"

// Service appends delivery attempts to the record store. Records are never
// mutated or deleted here; retention and rotation belong to whoever owns the
// store.
type Service struct {
	store domain.RecordStore
	mu    sync.Mutex
}

// New returns an attempt log backed by the given record store.
func New(store domain.RecordStore) *Service { return &Service{store: store} }

// Append adds one attempt record.
func (s *Service) Append(ctx context.Context, attempt domain.DeliveryAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempts, err := s.load(ctx)
	if err != nil {
		return err
	}
	attempts = append(attempts, attempt)
	raw, err := json.Marshal(attempts)
	if err != nil {
		return err
	}
	if err := s.store.Save(ctx, recordKey, raw); err != nil {
		return fmt.Errorf("append delivery attempt: %w", err)
	}
	return nil
}

// Recent returns up to n of the newest records, newest first.
func (s *Service) Recent(ctx context.Context, n int) ([]domain.DeliveryAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if n > len(attempts) {
		n = len(attempts)
	}
	out := make([]domain.DeliveryAttempt, 0, n)
	for i := len(attempts) - 1; i >= len(attempts)-n; i-- {
		out = append(out, attempts[i])
	}
	return out, nil
}

func (s *Service) load(ctx context.Context) ([]domain.DeliveryAttempt, error) {
	raw, ok, err := s.store.Load(ctx, recordKey)
	if err != nil {
		return nil, fmt.Errorf("load delivery log: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var attempts []domain.DeliveryAttempt
	if err := json.Unmarshal(raw, &attempts); err != nil {
		return nil, fmt.Errorf("decode delivery log: %w", err)
	}
	return attempts, nil
}

// Compile-time assertion that Service implements domain.AttemptLog.
var _ domain.AttemptLog = (*Service)(nil)
