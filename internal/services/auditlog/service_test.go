package auditlog_test

import (
	"context"
	"fmt"
	"testing"

	"pushkit/internal/domain"
	"pushkit/internal/services/auditlog"
	"pushkit/internal/store"
)

func TestAppendAndRecent_NewestFirst(t *testing.T) {
	ctx := context.Background()
	log := auditlog.New(store.NewMemoryStore())

	for i := 0; i < 3; i++ {
		err := log.Append(ctx, domain.DeliveryAttempt{
			ID:      fmt.Sprintf("attempt-%d", i),
			Outcome: domain.OutcomeDelivered,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := log.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 records, got %d", len(got))
	}
	if got[0].ID != "attempt-2" || got[1].ID != "attempt-1" {
		t.Fatalf("wrong order: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestRecent_EmptyLog(t *testing.T) {
	log := auditlog.New(store.NewMemoryStore())
	got, err := log.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("want no records, got %d", len(got))
	}
}
