package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/news_management_app/internal/apperrors"
	"github.com/SscSPs/news_management_app/internal/core/domain"
	"github.com/SscSPs/news_management_app/internal/middleware"
	"github.com/SscSPs/news_management_app/internal/pkg/xcache"
)

// listingCache memoises listing results of one kind. Every entry is tagged with
// the kind so a single write drops all of them.
type listingCache[T any] struct {
	kind  domain.Kind
	cache xcache.Cache[[]T]
}

func newListingCache[T any](kind domain.Kind, cache xcache.Cache[[]T]) listingCache[T] {
	if cache == nil {
		cache = xcache.NewNoop[[]T]()
	}
	return listingCache[T]{kind: kind, cache: cache}
}

// key scopes an entry by audience. Staff listings depend on the caller, the others only on the role.
func (c listingCache[T]) key(scope string, actor domain.Actor, filter domain.ListFilter) string {
	audience := string(actor.Role)
	if actor.Role == domain.RoleStaff {
		audience += ":" + strconv.Itoa(actor.AccountID)
	}
	return fmt.Sprintf("%s:%s:%s:%s", c.kind, scope, audience, filter.Key())
}

func (c listingCache[T]) get(ctx context.Context, key string) ([]T, bool) {
	items, err := c.cache.Get(ctx, key)
	if err != nil {
		return nil, false
	}
	return items, true
}

func (c listingCache[T]) set(ctx context.Context, key string, items []T) {
	if err := c.cache.Set(ctx, key, items, xcache.WithTags(string(c.kind))); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to cache listing",
			slog.String("key", key), slog.String("error", err.Error()))
	}
}

// invalidate drops every listing of the kind. It runs before a write returns.
func (c listingCache[T]) invalidate(ctx context.Context) error {
	if err := c.cache.Invalidate(ctx, xcache.InvalidateTags(string(c.kind))); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError,
			fmt.Sprintf("failed to invalidate %s listings", c.kind), err)
	}
	return nil
}
