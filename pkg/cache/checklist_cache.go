package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 5 * time.Minute

// ChecklistCache is a redis-backed response cache for synthesized checklists.
// A nil client degrades to no caching; every method becomes a no-op miss.
type ChecklistCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewChecklistCache(rdb *redis.Client) *ChecklistCache {
	return &ChecklistCache{
		rdb: rdb,
		ttl: defaultTTL,
	}
}

func key(applicationId string) string {
	return "checklist:" + applicationId
}

func (c *ChecklistCache) Get(ctx context.Context, applicationId string) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, key(applicationId)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func (c *ChecklistCache) Set(ctx context.Context, applicationId string, data []byte) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Set(ctx, key(applicationId), data, c.ttl)
}

func (c *ChecklistCache) Invalidate(ctx context.Context, applicationId string) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, key(applicationId))
}
