package redisad

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"relaygeo/internal/adapters/observability"
)

// Cache keeps raw relay list responses between local runs.
type Cache struct{ c *redis.Client }

func New(addr, pass string, db int) *Cache {
	return &Cache{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func (r *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := r.c.Get(ctx, key).Bytes()
	if err == redis.Nil {
		observability.ObserveCache("redis", "miss")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	observability.ObserveCache("redis", "hit")
	return v, true, nil
}

func (r *Cache) Set(ctx context.Context, key string, v []byte, ttlSec int) error {
	observability.ObserveCache("redis", "set")
	return r.c.Set(ctx, key, v, time.Duration(ttlSec)*time.Second).Err()
}

func (r *Cache) Close() error { return r.c.Close() }
