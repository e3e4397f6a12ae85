// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"smartslug/internal/slugfield"
)

const (
	// slugKeyPrefix is the Valkey key prefix for cached slug lookups.
	slugKeyPrefix = "slug:"

	// DefaultSlugTTL is how long a positive existence answer stays cached.
	DefaultSlugTTL = 10 * time.Minute
)

// SlugCache remembers which slugs are taken. Only positive answers are
// stored: a slug that exists now may disappear later, and Invalidate covers
// that, but a cached "free" would hand out duplicates.
type SlugCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSlugCache creates a slug cache. A nil client disables caching.
func NewSlugCache(client *redis.Client, ttl time.Duration) *SlugCache {
	if ttl <= 0 {
		ttl = DefaultSlugTTL
	}
	return &SlugCache{client: client, ttl: ttl}
}

// Wrap returns a checker that consults the cache before next. The namespace
// separates the tables sharing one Valkey database.
func (sc *SlugCache) Wrap(namespace string, next slugfield.Checker) slugfield.Checker {
	if sc == nil || sc.client == nil {
		return next
	}
	return &cachedChecker{cache: sc, namespace: namespace, next: next}
}

// Invalidate drops every cached answer for slug in namespace, whatever its
// scope or excluded row.
func (sc *SlugCache) Invalidate(ctx context.Context, namespace, slug string) {
	if sc == nil || sc.client == nil || slug == "" {
		return
	}

	pattern := slugKeyPrefix + namespace + ":" + escapeGlob(slug) + ":*"
	var cursor uint64
	var deleted int
	for {
		keys, next, err := sc.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			slog.Warn("slug cache scan error", "namespace", namespace, "slug", slug, "error", err)
			return
		}
		if len(keys) > 0 {
			if err := sc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("slug cache delete error", "namespace", namespace, "slug", slug, "error", err)
			}
			deleted += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	slog.Debug("slug cache invalidated", "namespace", namespace, "slug", slug, "deleted", deleted)
}

// Key returns the cache key for a lookup.
func Key(namespace string, q slugfield.Query) string {
	pk := "-"
	if q.ExcludePK != nil {
		pk = fmt.Sprint(q.ExcludePK)
	}
	return slugKeyPrefix + namespace + ":" + q.Slug + ":" + q.Scope.String() + ":" + pk
}

type cachedChecker struct {
	cache     *SlugCache
	namespace string
	next      slugfield.Checker
}

func (c *cachedChecker) Exists(ctx context.Context, q slugfield.Query) (bool, error) {
	key := Key(c.namespace, q)
	client := c.cache.client

	n, err := client.Exists(ctx, key).Result()
	switch {
	case err != nil:
		slog.Warn("slug cache get error", "key", key, "error", err)
	case n > 0:
		slog.Debug("slug cache hit", "key", key)
		return true, nil
	}

	taken, err := c.next.Exists(ctx, q)
	if err != nil || !taken {
		return taken, err
	}

	if err := client.Set(ctx, key, 1, c.cache.ttl).Err(); err != nil {
		slog.Warn("slug cache set error", "key", key, "error", err)
	}
	return true, nil
}

// escapeGlob quotes the SCAN MATCH metacharacters in s.
func escapeGlob(s string) string {
	return strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`).Replace(s)
}
