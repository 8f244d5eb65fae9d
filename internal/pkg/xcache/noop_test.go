package xcache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	cache := NewNoop[string]()

	_, err := cache.Get(ctx, "test-key")
	assert.ErrorIs(t, err, ErrCacheNotConfigured)

	assert.NoError(t, cache.Set(ctx, "test-key", "test-value"))

	_, err = cache.Get(ctx, "test-key")
	assert.ErrorIs(t, err, ErrCacheNotConfigured)

	assert.NoError(t, cache.Delete(ctx, "test-key"))
	assert.NoError(t, cache.Clear(ctx))
	assert.NoError(t, cache.Invalidate(ctx, InvalidateTags("article")))
	assert.Equal(t, "noop", cache.GetType())
}
