package store_test

import (
	"context"
	"testing"

	"pushkit/internal/domain"
	"pushkit/internal/store"
)

func TestFileStore_SaveLoad_OK(t *testing.T) {
	ctx := context.Background()
	var rs domain.RecordStore = store.NewFileStore(t.TempDir())

	if _, ok, err := rs.Load(ctx, "vapid_keys"); err != nil || ok {
		t.Fatalf("unwritten key: ok=%v err=%v", ok, err)
	}

	if err := rs.Save(ctx, "vapid_keys", []byte(`{"k":"v"}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok, err := rs.Load(ctx, "vapid_keys")
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if string(got) != `{"k":"v"}` {
		t.Fatalf("mismatch after load: %s", got)
	}
}

func TestFileStore_OverwriteReplaces(t *testing.T) {
	ctx := context.Background()
	rs := store.NewFileStore(t.TempDir())

	if err := rs.Save(ctx, "push_subscriptions", []byte("one")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := rs.Save(ctx, "push_subscriptions", []byte("two")); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, _, err := rs.Load(ctx, "push_subscriptions")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != "two" {
		t.Fatalf("want last write, got %s", got)
	}
}

func TestMemoryStore_CopiesData(t *testing.T) {
	ctx := context.Background()
	rs := store.NewMemoryStore()

	in := []byte("abc")
	if err := rs.Save(ctx, "k", in); err != nil {
		t.Fatalf("save: %v", err)
	}
	in[0] = 'z'

	got, _, err := rs.Load(ctx, "k")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != "abc" {
		t.Fatalf("store aliased caller buffer: %s", got)
	}
}
