package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/entity"
)

const reportPrefix = "stock-analytics:report:"

// RedisCache shares reports between API replicas. Redis is best-effort: any failure is
// logged and treated as a miss.
type RedisCache struct {
	client redis.UniversalClient
	ttl    time.Duration
	logger *logrus.Logger
}

// NewRedisCache cria um cache sobre o cliente informado.
func NewRedisCache(client redis.UniversalClient, ttl time.Duration, logger *logrus.Logger) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, logger: logger}
}

// Get implementa ReportCache.
func (c *RedisCache) Get(ctx context.Context, key string) (entity.DashboardReport, bool) {
	var report entity.DashboardReport

	data, err := c.client.Get(ctx, reportPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WithError(err).WithField("key", key).Warn("redis cache read failed")
		}
		return report, false
	}

	if err := json.Unmarshal(data, &report); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("discarding undecodable cached report")
		return report, false
	}
	return report, true
}

// Set implementa ReportCache.
func (c *RedisCache) Set(ctx context.Context, key string, report entity.DashboardReport) {
	data, err := json.Marshal(report)
	if err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("could not encode report for cache")
		return
	}
	if err := c.client.Set(ctx, reportPrefix+key, data, c.ttl).Err(); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("redis cache write failed")
	}
}

// Close fecha a conexão com o Redis.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
