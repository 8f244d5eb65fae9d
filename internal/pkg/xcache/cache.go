package xcache

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/eko/gocache/lib/v4/store"

	cachelib "github.com/eko/gocache/lib/v4/cache"
	gocache_store "github.com/eko/gocache/store/go_cache/v4"
	gocache "github.com/patrickmn/go-cache"
	redis "github.com/redis/go-redis/v9"

	redis_store "github.com/SscSPs/news_management_app/internal/pkg/xcache/redis"
)

// Cache is an alias to the gocache CacheInterface. It exposes
// Get, Set, Delete, Invalidate, Clear and GetType.
type Cache[T any] = cachelib.CacheInterface[T]

type SetterCache[T any] = cachelib.SetterCacheInterface[T]

// NewMemory creates a pure in-memory cache using patrickmn/go-cache as the backend.
func NewMemory[T any](client *gocache.Cache, options ...Option) SetterCache[T] {
	store := gocache_store.NewGoCache(client, options...)
	return cachelib.New[T](store)
}

// NewMemoryWithOptions builds the patrickmn/go-cache client from the given expiration and cleanup interval.
func NewMemoryWithOptions[T any](defaultExpiration, cleanupInterval time.Duration, options ...Option) SetterCache[T] {
	client := gocache.New(defaultExpiration, cleanupInterval)
	return NewMemory[T](client, options...)
}

// NewRedis creates a pure Redis cache.
func NewRedis[T any](client *redis.Client, options ...Option) SetterCache[T] {
	store := redis_store.NewRedisStore[T](client, options...)
	return cachelib.New[T](store)
}

// NewTwoLevel constructs a 2-level cache: memory first, then Redis.
func NewTwoLevel[T any](memory SetterCache[T], redis SetterCache[T]) Cache[T] {
	return cachelib.NewChain[T](memory, redis)
}

// NewFromConfig builds a typed cache from the given Config.
// An empty or unknown mode yields a noop cache.
func NewFromConfig[T any](ctx context.Context, cfg Config) (Cache[T], error) {
	logger := slog.Default()
	if cfg.Mode == "" {
		logger.Info("Listing cache disabled")
		return NewNoop[T](), nil
	}

	memExpiration := defaultIfZero(cfg.Memory.Expiration, 5*time.Minute)
	memCleanupInterval := defaultIfZero(cfg.Memory.CleanupInterval, 10*time.Minute)
	mem := NewMemory[T](gocache.New(memExpiration, memCleanupInterval), store.WithExpiration(memExpiration))

	var rds SetterCache[T]
	if (cfg.Redis.Addr != "" || cfg.Redis.URL != "") && cfg.Mode != ModeMemory {
		opts, err := newRedisOptions(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("invalid redis config: %w", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		rds = NewRedis[T](client, store.WithExpiration(defaultIfZero(cfg.Redis.Expiration, 30*time.Minute)))
	}

	switch cfg.Mode {
	case ModeTwoLevel:
		if rds != nil {
			logger.Info("Using two-level listing cache")
			return NewTwoLevel[T](mem, rds), nil
		}
		logger.Warn("Redis not configured, two-level cache falls back to memory")
		return mem, nil
	case ModeRedis:
		if rds == nil {
			return nil, errors.New("redis cache mode requires REDIS_URL or REDIS_ADDR")
		}
		logger.Info("Using redis listing cache")
		return rds, nil
	case ModeMemory:
		logger.Info("Using memory listing cache")
		return mem, nil
	default:
		logger.Warn("Unknown cache mode, listing cache disabled", slog.String("mode", cfg.Mode))
		return NewNoop[T](), nil
	}
}

func defaultIfZero(d, def time.Duration) time.Duration {
	if d == 0 {
		return def
	}
	return d
}

// newRedisOptions constructs redis.Options from RedisConfig. URL wins over Addr.
func newRedisOptions(cfg RedisConfig) (*redis.Options, error) {
	opts := &redis.Options{}

	if cfg.URL != "" {
		u, err := url.Parse(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		switch u.Scheme {
		case "redis", "rediss":
		default:
			return nil, fmt.Errorf("unsupported redis scheme: %s (expected redis:// or rediss://)", u.Scheme)
		}
		if u.Host == "" {
			return nil, errors.New("redis url missing host")
		}
		opts.Addr = u.Host
		if u.User != nil {
			opts.Username = u.User.Username()
			if pwd, ok := u.User.Password(); ok {
				opts.Password = pwd
			}
		}
		if dbStr := strings.TrimPrefix(u.Path, "/"); dbStr != "" {
			db, err := strconv.Atoi(dbStr)
			if err != nil {
				return nil, fmt.Errorf("invalid redis db in url: %w", err)
			}
			opts.DB = db
		}
		if u.Scheme == "rediss" {
			opts.TLSConfig = &tls.Config{InsecureSkipVerify: cfg.TLSInsecureSkipVerify}
		}
	} else if addr := strings.TrimSpace(cfg.Addr); addr != "" {
		opts.Addr = addr
	} else {
		return nil, errors.New("redis addr or url is required")
	}

	if cfg.Username != "" {
		opts.Username = cfg.Username
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}
	if cfg.TLS {
		if opts.TLSConfig == nil {
			opts.TLSConfig = &tls.Config{}
		}
		opts.TLSConfig.InsecureSkipVerify = cfg.TLSInsecureSkipVerify
	}
	if opts.TLSConfig == nil && cfg.TLSInsecureSkipVerify {
		return nil, errors.New("tls insecure skip verify requires TLS to be enabled (tls=true or rediss://)")
	}

	return opts, nil
}
