package redissvc

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const insightsKey = "dashboard:insights"

// RedisService caches rendered dashboard-insight payloads so repeated
// dashboard loads don't recompute every analysis. Entries expire on their
// own and are dropped eagerly whenever a sale or stock mutation lands.
type RedisService struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisService(rdb *redis.Client, ctx context.Context) *RedisService {
	return &RedisService{
		rdb: rdb,
		ctx: ctx,
	}
}

func (s *RedisService) Rdb() *redis.Client {
	return s.rdb
}

func (s *RedisService) Ctx() context.Context {
	return s.ctx
}

// GetInsights returns the cached insight payload, if any.
func (s *RedisService) GetInsights() (string, bool) {
	payload, err := s.rdb.Get(s.ctx, insightsKey).Result()
	if err != nil {
		return "", false
	}
	return payload, true
}

// SetInsights stores a rendered insight payload with the given TTL.
func (s *RedisService) SetInsights(payload string, ttl time.Duration) error {
	return s.rdb.Set(s.ctx, insightsKey, payload, ttl).Err()
}

// InvalidateInsights drops the cached payload after a data mutation.
func (s *RedisService) InvalidateInsights() error {
	return s.rdb.Del(s.ctx, insightsKey).Err()
}
