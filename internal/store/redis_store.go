package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"pushkit/internal/domain"
)

// RedisStore keeps records as plain Redis string values. Records here are
// durable state, not cache, so nothing sets a TTL.
type RedisStore struct {
	rdb *redis.Client
	// prefix namespaces keys so one Redis can serve several deployments.
	prefix string
}

// NewRedisStore wraps an existing client. prefix may be empty.
func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, data []byte) error {
	return s.rdb.Set(ctx, s.prefix+key, data, 0).Err()
}

var _ domain.RecordStore = (*RedisStore)(nil)
