package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	lib_store "github.com/eko/gocache/lib/v4/store"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func newStore(t *testing.T, options ...lib_store.Option) (*RedisStore[testStruct], *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore[testStruct](client, options...), mr
}

func TestRedisStoreSetAndGetWithStruct(t *testing.T) {
	ctx := context.Background()
	s, mr := newStore(t)

	require.NoError(t, s.Set(ctx, "my-key", testStruct{Name: "test", Value: 123}))

	raw, err := mr.Get("my-key")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"test","value":123}`, raw)

	value, err := s.Get(ctx, "my-key")
	require.NoError(t, err)
	assert.Equal(t, testStruct{Name: "test", Value: 123}, value)
}

func TestRedisStoreGetMissingKey(t *testing.T) {
	s, _ := newStore(t)

	_, err := s.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisStoreGetWithTTL(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t, lib_store.WithExpiration(time.Minute))

	require.NoError(t, s.Set(ctx, "ttl-key", testStruct{Name: "ttl"}))

	value, ttl, err := s.GetWithTTL(ctx, "ttl-key")
	require.NoError(t, err)
	assert.Equal(t, "ttl", value.(testStruct).Name)
	assert.Equal(t, time.Minute, ttl)
}

func TestRedisStoreInvalidateByTag(t *testing.T) {
	ctx := context.Background()
	s, mr := newStore(t)

	require.NoError(t, s.Set(ctx, "article:list:a", testStruct{Name: "a"}, lib_store.WithTags([]string{"article"})))
	require.NoError(t, s.Set(ctx, "article:list:b", testStruct{Name: "b"}, lib_store.WithTags([]string{"article"})))
	require.NoError(t, s.Set(ctx, "tag:list:a", testStruct{Name: "t"}, lib_store.WithTags([]string{"tag"})))

	require.NoError(t, s.Invalidate(ctx, lib_store.WithInvalidateTags([]string{"article"})))

	assert.False(t, mr.Exists("article:list:a"))
	assert.False(t, mr.Exists("article:list:b"))
	assert.False(t, mr.Exists("gocache_tag_article"))
	assert.True(t, mr.Exists("tag:list:a"))
}

func TestRedisStoreInvalidateWithoutTagsKeepsData(t *testing.T) {
	ctx := context.Background()
	s, mr := newStore(t)

	require.NoError(t, s.Set(ctx, "k", testStruct{Name: "k"}))
	require.NoError(t, s.Invalidate(ctx))
	assert.True(t, mr.Exists("k"))
}

func TestRedisStoreGetType(t *testing.T) {
	s, _ := newStore(t)
	assert.Equal(t, RedisType, s.GetType())
}
