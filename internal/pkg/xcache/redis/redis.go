package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	lib_store "github.com/eko/gocache/lib/v4/store"
	redis "github.com/redis/go-redis/v9"
)

// RedisClientInterface represents a go-redis/redis client.
type RedisClientInterface interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	TTL(ctx context.Context, key string) *redis.DurationCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Set(ctx context.Context, key string, values any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	FlushAll(ctx context.Context) *redis.StatusCmd
	SAdd(ctx context.Context, key string, members ...any) *redis.IntCmd
	SMembers(ctx context.Context, key string) *redis.StringSliceCmd
}

const (
	// RedisType represents the storage type as a string value.
	RedisType = "redis"
	// RedisTagPattern represents the tag pattern to be used as a key in specified storage.
	RedisTagPattern = "gocache_tag_%s"
)

// RedisStore is a gocache store that JSON-encodes values of type T.
type RedisStore[T any] struct {
	client  RedisClientInterface
	options *lib_store.Options
}

// NewRedisStore creates a new generic store.
func NewRedisStore[T any](client RedisClientInterface, options ...lib_store.Option) *RedisStore[T] {
	return &RedisStore[T]{
		client:  client,
		options: lib_store.ApplyOptions(options...),
	}
}

// Get returns typed data stored from a given key.
func (s *RedisStore[T]) Get(ctx context.Context, key any) (any, error) {
	value, _, err := s.get(ctx, key, false)
	return value, err
}

// GetWithTTL returns typed data stored from a given key and its corresponding TTL.
func (s *RedisStore[T]) GetWithTTL(ctx context.Context, key any) (any, time.Duration, error) {
	return s.get(ctx, key, true)
}

func (s *RedisStore[T]) get(ctx context.Context, key any, withTTL bool) (any, time.Duration, error) {
	var result T

	keyString, ok := key.(string)
	if !ok {
		return result, 0, lib_store.NotFoundWithCause(fmt.Errorf("expected string key, got %T", key))
	}

	object, err := s.client.Get(ctx, keyString).Result()
	if errors.Is(err, redis.Nil) {
		return result, 0, lib_store.NotFoundWithCause(err)
	}
	if err != nil {
		return result, 0, err
	}

	if err := json.Unmarshal([]byte(object), &result); err != nil {
		var zero T
		return zero, 0, err
	}

	if !withTTL {
		return result, 0, nil
	}
	ttl, err := s.client.TTL(ctx, keyString).Result()
	if err != nil {
		var zero T
		return zero, 0, err
	}
	return result, ttl, nil
}

// Set stores the JSON encoding of value and records it under its tags.
func (s *RedisStore[T]) Set(ctx context.Context, key any, value any, options ...lib_store.Option) error {
	opts := lib_store.ApplyOptionsWithDefault(s.options, options...)

	keyString, ok := key.(string)
	if !ok {
		return fmt.Errorf("expected string key, got %T", key)
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, keyString, string(raw), opts.Expiration).Err(); err != nil {
		return err
	}

	if tags := opts.Tags; len(tags) > 0 {
		ttl := opts.TagsTTL
		if ttl == 0 {
			ttl = 720 * time.Hour
		}
		return s.setTags(ctx, keyString, tags, ttl)
	}

	return nil
}

func (s *RedisStore[T]) setTags(ctx context.Context, key string, tags []string, ttl time.Duration) error {
	for _, tag := range tags {
		tagKey := fmt.Sprintf(RedisTagPattern, tag)
		if err := s.client.SAdd(ctx, tagKey, key).Err(); err != nil {
			return err
		}
		s.client.Expire(ctx, tagKey, ttl)
	}
	return nil
}

// Delete removes data from Redis for given key identifier.
func (s *RedisStore[T]) Delete(ctx context.Context, key any) error {
	keyString, ok := key.(string)
	if !ok {
		return fmt.Errorf("expected string key, got %T", key)
	}
	return s.client.Del(ctx, keyString).Err()
}

// GetType returns the store type.
func (s *RedisStore[T]) GetType() string {
	return RedisType
}

// Clear resets all data in the store.
func (s *RedisStore[T]) Clear(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

// Invalidate drops every key recorded under the given tags, then the tag sets themselves.
// Without tags it is a no-op.
func (s *RedisStore[T]) Invalidate(ctx context.Context, options ...lib_store.InvalidateOption) error {
	opts := lib_store.ApplyInvalidateOptions(options...)

	for _, tag := range opts.Tags {
		tagKey := fmt.Sprintf(RedisTagPattern, tag)
		keys, err := s.client.SMembers(ctx, tagKey).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("read tag %s: %w", tag, err)
		}
		keys = append(keys, tagKey)
		if err := s.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("invalidate tag %s: %w", tag, err)
		}
	}

	return nil
}
