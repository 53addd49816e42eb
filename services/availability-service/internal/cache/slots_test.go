package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) *SlotCache {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return New(rdb, time.Minute)
}

func TestSlotCache_RoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	if _, ok := c.Get(ctx, "org-1", "emp-1", "2025-01-24", 60, 30); ok {
		t.Fatalf("expected miss on empty cache")
	}

	body := []byte(`{"closed":false}`)
	c.Set(ctx, "org-1", "emp-1", "2025-01-24", 60, 30, body)

	got, ok := c.Get(ctx, "org-1", "emp-1", "2025-01-24", 60, 30)
	if !ok {
		t.Fatalf("expected hit")
	}
	if string(got) != string(body) {
		t.Fatalf("got %q, want %q", got, body)
	}
}

func TestSlotCache_KeysAreScoped(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, "org-1", "emp-1", "2025-01-24", 60, 30, []byte("a"))

	if _, ok := c.Get(ctx, "org-1", "", "2025-01-24", 60, 30); ok {
		t.Fatalf("employee-scoped entry leaked into the organization-wide key")
	}
	if _, ok := c.Get(ctx, "org-1", "emp-1", "2025-01-24", 30, 30); ok {
		t.Fatalf("entry leaked across durations")
	}
	if _, ok := c.Get(ctx, "org-1", "emp-1", "2025-01-25", 60, 30); ok {
		t.Fatalf("entry leaked across dates")
	}
}

func TestSlotCache_InvalidateOrphansAllVariants(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, "org-1", "emp-1", "2025-01-24", 60, 30, []byte("a"))
	c.Set(ctx, "org-1", "", "2025-01-24", 60, 60, []byte("b"))
	c.Set(ctx, "org-1", "", "2025-01-25", 60, 60, []byte("other-day"))

	if err := c.Invalidate(ctx, "org-1", "2025-01-24"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}

	if _, ok := c.Get(ctx, "org-1", "emp-1", "2025-01-24", 60, 30); ok {
		t.Fatalf("expected miss after invalidation")
	}
	if _, ok := c.Get(ctx, "org-1", "", "2025-01-24", 60, 60); ok {
		t.Fatalf("expected miss after invalidation")
	}
	// Other days are untouched.
	if _, ok := c.Get(ctx, "org-1", "", "2025-01-25", 60, 60); !ok {
		t.Fatalf("invalidation bled into another day")
	}
}

func TestSlotCache_NilIsInert(t *testing.T) {
	var c *SlotCache
	ctx := context.Background()
	if _, ok := c.Get(ctx, "org", "", "2025-01-24", 60, 60); ok {
		t.Fatalf("nil cache must miss")
	}
	c.Set(ctx, "org", "", "2025-01-24", 60, 60, []byte("x"))
	if err := c.Invalidate(ctx, "org", "2025-01-24"); err != nil {
		t.Fatalf("nil cache invalidate: %v", err)
	}
}
