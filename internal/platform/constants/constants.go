// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, object-store layout and cache keys
that are shared between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Assets: Object key layout and cache sizing.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "ekphrasis-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	// Listing pages sign up to 2000 image URLs, so this is wider than a typical API.
	DefaultWriteTimeout = 60 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 55 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderOrigin        = "Origin"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
)

// # JSON Field Identifiers

const (
	FieldError   = "error"
	FieldCode    = "code"
	FieldMessage = "message"
	FieldStatus  = "status"
	FieldChecks  = "checks"
)

// # Assets

const (
	// PaintingKeyPrefix is the bucket folder holding rendered painting images.
	PaintingKeyPrefix = "downloaded_paintings/"

	// PaintingKeySuffix is the file extension of every painting image.
	PaintingKeySuffix = ".jpg"

	// PoemKeyPrefix is the bucket folder holding poem bodies.
	PoemKeyPrefix = "downloaded_poems/"

	// PoemKeySuffix is the file extension of every poem body.
	PoemKeySuffix = ".txt"

	// DefaultImageURLTTL is both the presign lifetime and the cache lifetime of an image URL.
	DefaultImageURLTTL = 1 * time.Hour

	// DefaultPoemCacheSize bounds the poem text LRU.
	DefaultPoemCacheSize = 200
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixImageURL = "asset:image_url:"
)

// # Ingestion

const (
	// IngestProgressEvery controls how often the loader logs insert progress.
	IngestProgressEvery = 100
)
