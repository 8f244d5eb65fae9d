package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/news_management_app/internal/core/domain"
	"github.com/SscSPs/news_management_app/internal/pkg/xcache"
	"github.com/SscSPs/news_management_app/internal/platform/config"
)

// ListingCaches holds one listing cache per kind. Nil entries disable caching for that kind.
type ListingCaches struct {
	Articles   xcache.Cache[[]domain.Article]
	Categories xcache.Cache[[]domain.Category]
	Tags       xcache.Cache[[]domain.Tag]
}

// NewListingCaches builds the listing caches selected by CACHE_MODE.
func NewListingCaches(ctx context.Context, cfg *config.Config) (ListingCaches, error) {
	cacheCfg := CacheConfig(cfg)

	articles, err := xcache.NewFromConfig[[]domain.Article](ctx, cacheCfg)
	if err != nil {
		return ListingCaches{}, fmt.Errorf("failed to build article cache: %w", err)
	}
	categories, err := xcache.NewFromConfig[[]domain.Category](ctx, cacheCfg)
	if err != nil {
		return ListingCaches{}, fmt.Errorf("failed to build category cache: %w", err)
	}
	tags, err := xcache.NewFromConfig[[]domain.Tag](ctx, cacheCfg)
	if err != nil {
		return ListingCaches{}, fmt.Errorf("failed to build tag cache: %w", err)
	}

	return ListingCaches{Articles: articles, Categories: categories, Tags: tags}, nil
}

// CacheConfig maps application configuration onto the cache layer.
func CacheConfig(cfg *config.Config) xcache.Config {
	return xcache.Config{
		Mode: cfg.CacheMode,
		Memory: xcache.MemoryConfig{
			Expiration:      cfg.CacheExpiration,
			CleanupInterval: 2 * cfg.CacheExpiration,
		},
		Redis: xcache.RedisConfig{
			URL:        cfg.RedisURL,
			Addr:       cfg.RedisAddr,
			Expiration: cfg.CacheExpiration,
		},
	}
}
