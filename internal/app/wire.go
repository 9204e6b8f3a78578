package app

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"pushkit/internal/domain"
	"pushkit/internal/logging"
	"pushkit/internal/services/auditlog"
	"pushkit/internal/services/dispatch"
	"pushkit/internal/services/keys"
	"pushkit/internal/services/registry"
	"pushkit/internal/store"
	"pushkit/internal/transport"
)

// Wire bundles the stores and services for the CLI and embedding callers.
type Wire struct {
	Store      domain.RecordStore
	Keys       domain.KeyService
	Registry   domain.SubscriptionRegistry
	Attempts   domain.AttemptLog
	Dispatcher domain.Dispatcher
	Logger     *zap.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	logger, err := logging.New(cfg.Debug)
	if err != nil {
		return nil, err
	}

	var rs domain.RecordStore
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		rs = store.NewRedisStore(redis.NewClient(opts), "pushkit:")
	} else {
		rs = store.NewFileStore(cfg.Home)
	}

	keySvc := keys.New(rs)
	regSvc := registry.New(rs, logger)
	logSvc := auditlog.New(rs)

	dispSvc := dispatch.New(
		keySvc,
		regSvc,
		transport.NewHTTP(cfg.HTTP),
		logSvc,
		logger,
		dispatch.Config{
			MaxAttempts: cfg.MaxAttempts,
			SendTimeout: cfg.SendTimeout,
			Parallelism: cfg.Parallelism,
			Subject:     cfg.Subject,
			DefaultTTL:  cfg.DefaultTTL,
		},
	)

	return &Wire{
		Store:      rs,
		Keys:       keySvc,
		Registry:   regSvc,
		Attempts:   logSvc,
		Dispatcher: dispSvc,
		Logger:     logger,
	}, nil
}
