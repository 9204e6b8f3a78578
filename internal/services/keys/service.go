package keys

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"pushkit/internal/crypto"
	"pushkit/internal/domain"
	"pushkit/internal/protocol/vapid"
)

// recordKey matches the vapid_keys.json file the original deployment wrote.
const recordKey = "vapid_keys"

// ErrKeyCorrupt means the persisted pair fails the public-equals-Priv·G
// invariant. This is fatal at startup: regenerating would break the trust
// relationship of every existing subscription, so an operator has to resolve
// it by hand.
var ErrKeyCorrupt = errors.New("stored VAPID key pair is corrupt")

// ErrNotLoaded means SignToken was called before LoadOrCreate.
var ErrNotLoaded = errors.New("VAPID keys not loaded")

// storedPair is the on-disk form: unpadded urlsafe base64, the same format
// VAPID keys circulate in everywhere else (client JS, DevTools).
type storedPair struct {
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
}

// Service owns the server's VAPID pair: one load at startup, immutable after.
type Service struct {
	store domain.RecordStore

	mu   sync.RWMutex
	pair *domain.VapidKeyPair
}

// New returns a key service backed by the given record store.
func New(store domain.RecordStore) *Service { return &Service{store: store} }

// Generate produces a fresh P-256 pair without persisting it. It fails only
// on entropy-source failure.
func Generate() (domain.VapidKeyPair, error) {
	priv, pub, err := crypto.GenerateP256()
	if err != nil {
		return domain.VapidKeyPair{}, err
	}
	return domain.VapidKeyPair{Priv: priv, Pub: pub}, nil
}

// LoadOrCreate returns the persisted pair, creating and persisting one only
// when none exists yet. A stored pair that fails the consistency check is
// reported as ErrKeyCorrupt, never silently replaced.
func (s *Service) LoadOrCreate(ctx context.Context) (domain.VapidKeyPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pair != nil {
		return *s.pair, nil
	}

	raw, ok, err := s.store.Load(ctx, recordKey)
	if err != nil {
		return domain.VapidKeyPair{}, fmt.Errorf("load vapid keys: %w", err)
	}
	if ok {
		pair, err := decodePair(raw)
		if err != nil {
			return domain.VapidKeyPair{}, err
		}
		s.pair = &pair
		return pair, nil
	}

	pair, err := Generate()
	if err != nil {
		return domain.VapidKeyPair{}, err
	}
	blob, err := json.Marshal(storedPair{
		PrivateKey: crypto.B64(pair.Priv.Slice()),
		PublicKey:  crypto.B64(pair.Pub.Slice()),
	})
	if err != nil {
		return domain.VapidKeyPair{}, err
	}
	if err := s.store.Save(ctx, recordKey, blob); err != nil {
		return domain.VapidKeyPair{}, fmt.Errorf("persist vapid keys: %w", err)
	}
	s.pair = &pair
	return pair, nil
}

// SignToken mints an ES256 VAPID token scoped to a push-service origin and
// returns the public key to advertise alongside it.
func (s *Service) SignToken(audience string, expiry time.Duration, subject string) (string, domain.P256Public, error) {
	s.mu.RLock()
	pair := s.pair
	s.mu.RUnlock()
	if pair == nil {
		return "", domain.P256Public{}, ErrNotLoaded
	}
	token, err := vapid.Sign(pair.Priv, audience, expiry, subject)
	if err != nil {
		return "", domain.P256Public{}, err
	}
	return token, pair.Pub, nil
}

func decodePair(raw []byte) (domain.VapidKeyPair, error) {
	var sp storedPair
	if err := json.Unmarshal(raw, &sp); err != nil {
		return domain.VapidKeyPair{}, fmt.Errorf("%w: %v", ErrKeyCorrupt, err)
	}
	privRaw, err := crypto.B64Decode(sp.PrivateKey)
	if err != nil || len(privRaw) != 32 {
		return domain.VapidKeyPair{}, fmt.Errorf("%w: bad private scalar", ErrKeyCorrupt)
	}
	pubRaw, err := crypto.B64Decode(sp.PublicKey)
	if err != nil || len(pubRaw) != 65 {
		return domain.VapidKeyPair{}, fmt.Errorf("%w: bad public point", ErrKeyCorrupt)
	}

	var pair domain.VapidKeyPair
	copy(pair.Priv[:], privRaw)
	copy(pair.Pub[:], pubRaw)

	// The public point must be exactly Priv·G.
	derived, err := crypto.DerivePublic(pair.Priv)
	if err != nil || derived != pair.Pub {
		return domain.VapidKeyPair{}, fmt.Errorf("%w: public key does not match private scalar", ErrKeyCorrupt)
	}
	return pair, nil
}

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)
