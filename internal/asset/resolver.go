// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package asset turns painting and poem names into object store backed values:
a presigned image URL and the poem text.

# Caching

  - Image URLs are cached until the signature expires (one hour by default).
    The freshness check uses the resolver's clock, so a cached URL is never
    handed out after its own expiry even if the backing cache still holds it.
  - Poem texts are cached in a fixed-size LRU with no TTL. Failed fetches are
    not cached, so a poem uploaded later becomes visible without a restart.

Every failure degrades to an absent value; nothing in this package returns an
error to the request path.
*/
package asset

import (
	"context"
	"io"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/taibuivan/ekphrasis/internal/platform/constants"
	"github.com/taibuivan/ekphrasis/internal/platform/objectstore"
)

// ObjectStore is the subset of [objectstore.Store] the resolver needs.
type ObjectStore interface {
	Head(ctx context.Context, key string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// Options tunes a [Resolver]. Zero values take the package defaults.
type Options struct {
	URLCache      URLCache
	ImageURLTTL   time.Duration
	PoemCacheSize int
	Metrics       *Metrics
	Now           func() time.Time
}

// Resolver resolves asset names against the bucket.
type Resolver struct {
	store   ObjectStore
	urls    URLCache
	poems   *lru.Cache[string, string]
	ttl     time.Duration
	metrics *Metrics
	now     func() time.Time
	logger  *slog.Logger
}

// NewResolver builds a resolver over store.
func NewResolver(store ObjectStore, options Options, logger *slog.Logger) (*Resolver, error) {
	if options.ImageURLTTL <= 0 {
		options.ImageURLTTL = constants.DefaultImageURLTTL
	}
	if options.PoemCacheSize <= 0 {
		options.PoemCacheSize = constants.DefaultPoemCacheSize
	}
	if options.URLCache == nil {
		options.URLCache = NewMemoryURLCache(options.ImageURLTTL)
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	poems, err := lru.New[string, string](options.PoemCacheSize)
	if err != nil {
		return nil, err
	}

	return &Resolver{
		store:   store,
		urls:    options.URLCache,
		poems:   poems,
		ttl:     options.ImageURLTTL,
		metrics: options.Metrics,
		now:     options.Now,
		logger:  logger,
	}, nil
}

// PaintingKey is the object key of a painting image.
func PaintingKey(name string) string {
	return constants.PaintingKeyPrefix + name + constants.PaintingKeySuffix
}

// PoemKey is the object key of a poem text.
func PoemKey(name string) string {
	return constants.PoemKeyPrefix + name + constants.PoemKeySuffix
}

// ImageURL returns a presigned URL for the painting image, reusing a cached
// signature while it is still valid.
func (resolver *Resolver) ImageURL(ctx context.Context, paintingName string) (string, bool) {
	now := resolver.now()

	if cached, ok := resolver.urls.Get(ctx, paintingName); ok && now.Before(cached.Expiry) {
		resolver.metrics.cacheResult(cacheImageURL, true)
		return cached.URL, true
	}
	resolver.metrics.cacheResult(cacheImageURL, false)

	key := PaintingKey(paintingName)
	if err := resolver.store.Head(ctx, key); err != nil {
		resolver.fetchFailed(ctx, assetImage, key, err)
		return "", false
	}

	url, err := resolver.store.PresignGet(ctx, key, resolver.ttl)
	if err != nil {
		resolver.fetchFailed(ctx, assetImage, key, err)
		return "", false
	}

	resolver.urls.Set(ctx, paintingName, CachedURL{URL: url, Expiry: now.Add(resolver.ttl)})
	return url, true
}

// PoemText returns the UTF-8 text of the poem.
func (resolver *Resolver) PoemText(ctx context.Context, poemName string) (string, bool) {
	if text, ok := resolver.poems.Get(poemName); ok {
		resolver.metrics.cacheResult(cachePoemText, true)
		return text, true
	}
	resolver.metrics.cacheResult(cachePoemText, false)

	key := PoemKey(poemName)
	body, err := resolver.store.Get(ctx, key)
	if err != nil {
		resolver.fetchFailed(ctx, assetPoem, key, err)
		return "", false
	}
	defer body.Close()

	text, err := decodeText(body)
	if err != nil {
		resolver.fetchFailed(ctx, assetPoem, key, err)
		return "", false
	}

	resolver.poems.Add(poemName, text)
	return text, true
}

// CachedPoems returns the number of poem texts currently held.
func (resolver *Resolver) CachedPoems() int {
	return resolver.poems.Len()
}

func (resolver *Resolver) fetchFailed(ctx context.Context, asset, key string, err error) {
	if objectstore.IsNotFound(err) {
		resolver.metrics.fetchError(asset, reasonNotFound)
		resolver.logger.DebugContext(ctx, "asset_not_found", slog.String("key", key))
		return
	}

	resolver.metrics.fetchError(asset, reasonBackend)
	resolver.logger.WarnContext(ctx, "asset_fetch_failed",
		slog.String("key", key),
		slog.String("error", err.Error()),
	)
}
