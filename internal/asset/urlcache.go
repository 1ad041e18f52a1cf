// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package asset

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/ekphrasis/internal/platform/constants"
)

// CachedURL is a signed URL together with the instant it stops being valid.
type CachedURL struct {
	URL    string    `json:"url"`
	Expiry time.Time `json:"expiry"`
}

// URLCache stores signed image URLs by painting name.
//
// Implementations may drop entries at any time. Freshness is decided by the
// caller against [CachedURL.Expiry], not by the cache.
type URLCache interface {
	Get(ctx context.Context, paintingName string) (CachedURL, bool)
	Set(ctx context.Context, paintingName string, entry CachedURL)
}

// # In-process cache

// MemoryURLCache keeps signed URLs in process memory.
type MemoryURLCache struct {
	entries *cache.Cache
}

// NewMemoryURLCache creates a cache whose entries are swept after ttl.
func NewMemoryURLCache(ttl time.Duration) *MemoryURLCache {
	return &MemoryURLCache{entries: cache.New(ttl, ttl*2)}
}

func (memory *MemoryURLCache) Get(_ context.Context, paintingName string) (CachedURL, bool) {
	value, found := memory.entries.Get(paintingName)
	if !found {
		return CachedURL{}, false
	}
	entry, ok := value.(CachedURL)
	return entry, ok
}

func (memory *MemoryURLCache) Set(_ context.Context, paintingName string, entry CachedURL) {
	memory.entries.Set(paintingName, entry, cache.DefaultExpiration)
}

// # Shared cache

// RedisURLCache shares signed URLs between API replicas.
//
// Redis errors are logged and treated as misses; the resolver then signs a
// fresh URL.
type RedisURLCache struct {
	client redis.Cmdable
	logger *slog.Logger
	now    func() time.Time
}

// NewRedisURLCache wraps client. now is used to derive the key TTL from the
// entry expiry; nil means [time.Now].
func NewRedisURLCache(client redis.Cmdable, now func() time.Time, logger *slog.Logger) *RedisURLCache {
	if now == nil {
		now = time.Now
	}
	return &RedisURLCache{client: client, logger: logger, now: now}
}

func redisKey(paintingName string) string {
	return constants.RedisPrefixImageURL + paintingName
}

func (shared *RedisURLCache) Get(ctx context.Context, paintingName string) (CachedURL, bool) {
	raw, err := shared.client.Get(ctx, redisKey(paintingName)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			shared.logger.WarnContext(ctx, "image_url_cache_read_failed",
				slog.String("painting", paintingName),
				slog.String("error", err.Error()),
			)
		}
		return CachedURL{}, false
	}

	var entry CachedURL
	if err := json.Unmarshal(raw, &entry); err != nil {
		shared.logger.WarnContext(ctx, "image_url_cache_corrupt",
			slog.String("painting", paintingName),
			slog.String("error", err.Error()),
		)
		return CachedURL{}, false
	}
	return entry, true
}

func (shared *RedisURLCache) Set(ctx context.Context, paintingName string, entry CachedURL) {
	ttl := entry.Expiry.Sub(shared.now())
	if ttl <= 0 {
		return
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return
	}

	if err := shared.client.Set(ctx, redisKey(paintingName), raw, ttl).Err(); err != nil {
		shared.logger.WarnContext(ctx, "image_url_cache_write_failed",
			slog.String("painting", paintingName),
			slog.String("error", err.Error()),
		)
	}
}
