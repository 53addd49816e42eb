package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// SlotCache memoizes rendered availability responses in Redis for a short
// TTL. Invalidation is generation-based: each (organization, date) pair has
// a counter baked into the value keys, so bumping it on a booking event
// orphans every cached variant at once without SCAN.
type SlotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *SlotCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &SlotCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached response body, if any. All Redis failures read as
// a miss: the caller recomputes, the cache never blocks a query.
func (c *SlotCache) Get(ctx context.Context, org, employee, date string, duration, step int) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	body, err := c.rdb.Get(ctx, c.valueKey(ctx, org, employee, date, duration, step)).Bytes()
	if err != nil {
		return nil, false
	}
	return body, true
}

func (c *SlotCache) Set(ctx context.Context, org, employee, date string, duration, step int, body []byte) {
	if c == nil || c.rdb == nil {
		return
	}
	_ = c.rdb.Set(ctx, c.valueKey(ctx, org, employee, date, duration, step), body, c.ttl).Err()
}

// Invalidate bumps the generation for one organization-day. Stale entries
// expire on their own TTL.
func (c *SlotCache) Invalidate(ctx context.Context, org, date string) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	key := generationKey(org, date)
	if err := c.rdb.Incr(ctx, key).Err(); err != nil {
		return err
	}
	// Generations outlive the values they gate; a day's counter is useless
	// once its cached entries are gone.
	return c.rdb.Expire(ctx, key, 48*time.Hour).Err()
}

func (c *SlotCache) valueKey(ctx context.Context, org, employee, date string, duration, step int) string {
	gen := 0
	if raw, err := c.rdb.Get(ctx, generationKey(org, date)).Result(); err == nil {
		if n, err := strconv.Atoi(raw); err == nil {
			gen = n
		}
	}
	if employee == "" {
		employee = "-"
	}
	return fmt.Sprintf("slots:v1:%s:%s:%s:%d:%d:g%d", org, employee, date, duration, step, gen)
}

func generationKey(org, date string) string {
	return fmt.Sprintf("slots:gen:%s:%s", org, date)
}

func ReadyCheck(rdb *redis.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if rdb == nil {
			return errors.New("redis not configured")
		}
		return rdb.Ping(ctx).Err()
	}
}
