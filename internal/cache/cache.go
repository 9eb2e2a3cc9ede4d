package cache

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is the subset of a redis client the service uses: a key space for
// short lived markers plus a health check. ttl <= 0 means the key never
// expires.
type Cache interface {
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

var _ Cache = (*redis.Client)(nil)

const keyPrefix = "site-app"

// Key namespaces parts under the application prefix, e.g. Key("revoked", jti).
func Key(parts ...string) string {
	return keyPrefix + ":" + strings.Join(parts, ":")
}

type FakeCache struct {
	ExistsFn func(ctx context.Context, keys ...string) *redis.IntCmd
	SetFn    func(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	PingFn   func(ctx context.Context) *redis.StatusCmd
	CloseFn  func() error
}

func (f *FakeCache) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.ExistsFn == nil {
		panic("FakeCache: unexpected Exists " + strings.Join(keys, ","))
	}
	return f.ExistsFn(ctx, keys...)
}

func (f *FakeCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.SetFn == nil {
		panic("FakeCache: unexpected Set " + key)
	}
	return f.SetFn(ctx, key, value, expiration)
}

func (f *FakeCache) Ping(ctx context.Context) *redis.StatusCmd {
	if f.PingFn == nil {
		panic("FakeCache: unexpected Ping")
	}
	return f.PingFn(ctx)
}

func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
