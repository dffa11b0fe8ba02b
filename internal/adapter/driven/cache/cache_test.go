package cache

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/entity"
	"github.com/diillson/stock-analytics-dashboard-go/internal/shared/types"
)

func TestMemoryCache(t *testing.T) {
	c, err := NewMemoryCache(2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	ctx := context.Background()

	c.Set(ctx, "a", entity.DashboardReport{RunID: "a"})
	c.Set(ctx, "b", entity.DashboardReport{RunID: "b"})
	c.Set(ctx, "c", entity.DashboardReport{RunID: "c"})

	if _, ok := c.Get(ctx, "a"); ok {
		t.Error("Expected oldest entry to be evicted")
	}
	if got, ok := c.Get(ctx, "c"); !ok || got.RunID != "c" {
		t.Errorf("Expected entry c, got %+v (%v)", got, ok)
	}
	if c.Len() != 2 {
		t.Errorf("Expected 2 entries, got %d", c.Len())
	}
}

func TestNew(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	if c, err := New(types.CacheConfig{Backend: "none"}, logger); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	} else if _, ok := c.Get(context.Background(), "x"); ok {
		t.Error("Expected noop cache to always miss")
	}

	if c, err := New(types.CacheConfig{Backend: "memory", Size: 4}, logger); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	} else if _, ok := c.(*MemoryCache); !ok {
		t.Errorf("Expected *MemoryCache, got %T", c)
	}

	if _, err := New(types.CacheConfig{Backend: "memcached"}, logger); err == nil {
		t.Error("Expected error for unknown backend")
	}
}

func TestRedisCache_UnreachableServerIsAMiss(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	c := NewRedisCache(client, time.Minute, logger)
	defer c.Close()

	ctx := context.Background()
	c.Set(ctx, "k", entity.DashboardReport{RunID: "k"})
	if _, ok := c.Get(ctx, "k"); ok {
		t.Error("Expected miss when redis is unreachable")
	}
}
