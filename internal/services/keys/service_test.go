package keys_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"pushkit/internal/crypto"
	"pushkit/internal/services/keys"
	"pushkit/internal/store"
)

func TestLoadOrCreate_CreatesThenReloadsSamePair(t *testing.T) {
	ctx := context.Background()
	rs := store.NewMemoryStore()

	first, err := keys.New(rs).LoadOrCreate(ctx)
	if err != nil {
		t.Fatalf("LoadOrCreate (create): %v", err)
	}

	// A separate service over the same store must load, not regenerate.
	second, err := keys.New(rs).LoadOrCreate(ctx)
	if err != nil {
		t.Fatalf("LoadOrCreate (load): %v", err)
	}
	if first != second {
		t.Fatal("reload produced a different pair")
	}
}

func TestLoadOrCreate_RejectsCorruptPair(t *testing.T) {
	ctx := context.Background()
	rs := store.NewMemoryStore()

	// A private scalar persisted with someone else's public point.
	a, err := keys.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := keys.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	blob, _ := json.Marshal(map[string]string{
		"private_key": crypto.B64(a.Priv.Slice()),
		"public_key":  crypto.B64(b.Pub.Slice()),
	})
	if err := rs.Save(ctx, "vapid_keys", blob); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	if _, err := keys.New(rs).LoadOrCreate(ctx); !errors.Is(err, keys.ErrKeyCorrupt) {
		t.Fatalf("want ErrKeyCorrupt, got %v", err)
	}

	// The corrupt record must survive untouched for an operator to inspect.
	raw, ok, err := rs.Load(ctx, "vapid_keys")
	if err != nil || !ok {
		t.Fatalf("record gone after rejected load: ok=%v err=%v", ok, err)
	}
	if string(raw) != string(blob) {
		t.Fatal("corrupt record was rewritten")
	}
}

func TestSignToken_RequiresLoadedPair(t *testing.T) {
	svc := keys.New(store.NewMemoryStore())
	if _, _, err := svc.SignToken("https://push.example.net", time.Hour, "mailto:ops@example.com"); !errors.Is(err, keys.ErrNotLoaded) {
		t.Fatalf("want ErrNotLoaded, got %v", err)
	}
}

func TestSignToken_ReturnsAdvertisedPublicKey(t *testing.T) {
	ctx := context.Background()
	svc := keys.New(store.NewMemoryStore())

	pair, err := svc.LoadOrCreate(ctx)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}
	token, pub, err := svc.SignToken("https://push.example.net", time.Hour, "mailto:ops@example.com")
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if pub != pair.Pub {
		t.Fatal("advertised key differs from the stored pair")
	}
}
