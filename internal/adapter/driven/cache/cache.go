// Package cache provides the report cache backends.
package cache

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/entity"
	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/repository"
	"github.com/diillson/stock-analytics-dashboard-go/internal/shared/types"
)

// New cria o cache configurado.
func New(cfg types.CacheConfig, logger *logrus.Logger) (repository.ReportCache, error) {
	switch cfg.Backend {
	case "", "none":
		return NoopCache{}, nil
	case "memory":
		return NewMemoryCache(cfg.Size)
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return NewRedisCache(client, time.Duration(cfg.TTLSeconds)*time.Second, logger), nil
	default:
		return nil, fmt.Errorf("unsupported cache backend: %s", cfg.Backend)
	}
}

// NoopCache não armazena nada.
type NoopCache struct{}

// Get implementa ReportCache.
func (NoopCache) Get(context.Context, string) (entity.DashboardReport, bool) {
	return entity.DashboardReport{}, false
}

// Set implementa ReportCache.
func (NoopCache) Set(context.Context, string, entity.DashboardReport) {}

// MemoryCache is a bounded in-process LRU.
type MemoryCache struct {
	entries *lru.Cache[string, entity.DashboardReport]
}

// NewMemoryCache cria um LRU com a capacidade informada.
func NewMemoryCache(size int) (*MemoryCache, error) {
	if size <= 0 {
		size = 128
	}
	entries, err := lru.New[string, entity.DashboardReport](size)
	if err != nil {
		return nil, fmt.Errorf("could not create cache: %w", err)
	}
	return &MemoryCache{entries: entries}, nil
}

// Get implementa ReportCache.
func (c *MemoryCache) Get(_ context.Context, key string) (entity.DashboardReport, bool) {
	return c.entries.Get(key)
}

// Set implementa ReportCache.
func (c *MemoryCache) Set(_ context.Context, key string, report entity.DashboardReport) {
	c.entries.Add(key, report)
}

// Len returns the number of cached reports.
func (c *MemoryCache) Len() int {
	return c.entries.Len()
}
