// Package cache keeps read models in Redis keyed by the page path that displays them.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	defaultPrefix = "storefront:page:"
	defaultTTL    = 10 * time.Minute
)

// redisPageCache is a cache-aside store. Revalidate deletes keys so the next read reloads.
type redisPageCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisPageCache wraps a Redis client
func NewRedisPageCache(client redis.UniversalClient, prefix string, ttl time.Duration) service.PageCache {
	if prefix == "" {
		prefix = defaultPrefix
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &redisPageCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *redisPageCache) key(path string) string {
	return c.prefix + path
}

// Get loads the cached value for path into dest
func (c *redisPageCache) Get(ctx context.Context, path string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, c.key(path)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "cache get %s", path)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, errors.Wrapf(err, "cache decode %s", path)
	}

	return true, nil
}

// Set stores value for path with the configured TTL
func (c *redisPageCache) Set(ctx context.Context, path string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "cache encode %s", path)
	}

	if err := c.client.Set(ctx, c.key(path), data, c.ttl).Err(); err != nil {
		return errors.Wrapf(err, "cache set %s", path)
	}

	return nil
}

// Revalidate drops the cached values for paths
func (c *redisPageCache) Revalidate(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}

	keys := make([]string, 0, len(paths))
	for _, path := range paths {
		keys = append(keys, c.key(path))
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrap(err, "cache revalidate")
	}

	return nil
}

// noopPageCache is used when Redis is not configured; every read misses.
type noopPageCache struct{}

func (noopPageCache) Get(context.Context, string, any) (bool, error) { return false, nil }

func (noopPageCache) Set(context.Context, string, any) error { return nil }

func (noopPageCache) Revalidate(context.Context, ...string) error { return nil }

// Params holds dependencies for the page cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New creates the Redis page cache, or a no-op cache when Redis is not configured
func New(params Params) service.PageCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, page cache disabled")

		return noopPageCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Unreachable Redis is logged, not fatal.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed", slog.String("addr", cfg.Addr), slog.Any("error", err))
			} else {
				params.Logger.Info("Connected to Redis", slog.String("addr", cfg.Addr))
			}

			return nil
		},
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing Redis client")

			return client.Close()
		},
	})

	return NewRedisPageCache(client, cfg.Prefix, cfg.TTL)
}

// Module provides the page cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
