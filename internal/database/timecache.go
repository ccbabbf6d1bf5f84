package database

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tucasahr/hr-apigateway/internal/domain"
	"github.com/tucasahr/hr-apigateway/internal/logger"
)

// TimeCache is a read-through/write-through Redis cache for the time-record
// collection, filling the role the browser's local storage played for the
// original front end. A nil TimeCache is valid and degrades every operation
// to a no-op miss, so the service works without Redis configured.
type TimeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTimeCache connects to redis with short timeouts. An empty addr returns
// a nil cache.
func NewTimeCache(addr string, ttl time.Duration) *TimeCache {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
	return &TimeCache{client: client, ttl: ttl}
}

// Healthy verifies redis connectivity.
func (c *TimeCache) Healthy(ctx context.Context) bool {
	if c == nil || c.client == nil {
		return false
	}
	return c.client.Ping(ctx).Err() == nil
}

// Get returns the cached records under key, with a hit indicator. Cache
// failures count as misses; the caller falls through to the repository.
func (c *TimeCache) Get(ctx context.Context, key string) ([]domain.RawTimeRecord, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.WarnLog(ctx, "time cache read failed for %s: %v", key, err)
		}
		return nil, false
	}
	var records []domain.RawTimeRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		logger.WarnLog(ctx, "time cache payload corrupt for %s: %v", key, err)
		return nil, false
	}
	return records, true
}

// Put stores records under key with the configured TTL.
func (c *TimeCache) Put(ctx context.Context, key string, records []domain.RawTimeRecord) {
	if c == nil || c.client == nil {
		return
	}
	payload, err := json.Marshal(records)
	if err != nil {
		logger.WarnLog(ctx, "time cache marshal failed for %s: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		logger.WarnLog(ctx, "time cache write failed for %s: %v", key, err)
	}
}

// Invalidate drops the cached records under key after a successful submit.
func (c *TimeCache) Invalidate(ctx context.Context, key string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		logger.WarnLog(ctx, "time cache invalidate failed for %s: %v", key, err)
	}
}
