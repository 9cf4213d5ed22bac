// Package cache keeps the last known status of reminder deliveries in Redis so
// status reads and the notifier workers do not hit PostgreSQL for every lookup.
package cache

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/plant-care/internal/model"
)

const keyPrefix = "delivery:"

//go:generate mockgen -source=status.go -destination=../mocks/cache/mock.go -package=mocks
type store interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// StatusCache is safe to use as a nil pointer; it then caches nothing.
type StatusCache struct {
	store    store
	strategy retry.Strategy
}

// NewStatusCache creates a cache on top of a wbf redis client.
func NewStatusCache(s store, strategy retry.Strategy) *StatusCache {
	return &StatusCache{store: s, strategy: strategy}
}

// Set stores the status. Failures are logged, the database stays authoritative.
func (c *StatusCache) Set(ctx context.Context, id uuid.UUID, status model.DeliveryStatus) {
	if c == nil {
		return
	}

	if err := c.store.SetWithRetry(ctx, c.strategy, keyPrefix+id.String(), string(status)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache delivery status")
	}
}

// SetMany stores the same status for several deliveries.
func (c *StatusCache) SetMany(ctx context.Context, ids []uuid.UUID, status model.DeliveryStatus) {
	for _, id := range ids {
		c.Set(ctx, id, status)
	}
}

// Get returns the cached status, reporting false on a miss.
func (c *StatusCache) Get(ctx context.Context, id uuid.UUID) (model.DeliveryStatus, bool) {
	if c == nil {
		return "", false
	}

	status, err := c.store.GetWithRetry(ctx, c.strategy, keyPrefix+id.String())
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get delivery status from cache")
		}
		return "", false
	}

	return model.DeliveryStatus(status), true
}
