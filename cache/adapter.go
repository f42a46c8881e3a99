package cache

import (
	"context"
	"time"

	"github.com/statforge/habitquest/cache/local"
	cacheredis "github.com/statforge/habitquest/cache/redis"
)

// Cache is the KV surface the service needs: session keys and cached
// character records.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
	SetNX(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

// Config holds configuration for both Redis and the in-process cache.
type Config struct {
	RedisAddr       string        `mapstructure:"redis_addr"`
	RedisPassword   string        `mapstructure:"redis_password"`
	RedisDB         int           `mapstructure:"redis_db"`
	LocalGCInterval time.Duration `mapstructure:"local_gc_interval"`
}

// New returns a Cache backed by Redis if RedisAddr is set, otherwise an
// in-process cache that needs no external services.
func New(cfg Config) (Cache, error) {
	if cfg.RedisAddr != "" {
		rc, err := cacheredis.New(cacheredis.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		return rc, nil
	}
	return local.New(local.Config{GCInterval: cfg.LocalGCInterval}), nil
}
