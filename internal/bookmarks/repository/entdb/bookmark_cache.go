package entdb

import (
	"context"
	"encoding/json"
	"time"

	"markfy/internal/bookmarks/domain"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	bookmarkCachePrefix = "bookmark:"
	bookmarkCacheTTL    = 10 * time.Minute
)

// BookmarkCache defines the interface for bookmark caching operations.
// Implementations should handle cache misses gracefully by returning nil, nil.
type BookmarkCache interface {
	// Get retrieves a bookmark from cache by id.
	// Returns nil, nil if the bookmark is not in cache (cache miss).
	Get(ctx context.Context, id string) (*domain.Bookmark, error)

	// Set stores a bookmark in the cache.
	Set(ctx context.Context, b *domain.Bookmark) error

	// Invalidate removes a bookmark from the cache.
	Invalidate(ctx context.Context, id string) error
}

// Compile-time interface checks
var (
	_ BookmarkCache = (*RedisBookmarkCache)(nil)
	_ BookmarkCache = (*noopBookmarkCache)(nil)
)

// RedisBookmarkCache implements BookmarkCache using Redis.
type RedisBookmarkCache struct {
	rdb    *redis.Client
	logger *zap.Logger
}

// NewBookmarkCache creates a Redis-based bookmark cache, or a no-op cache
// when no Redis client is configured.
func NewBookmarkCache(rdb *redis.Client, logger *zap.Logger) BookmarkCache {
	if rdb == nil {
		return &noopBookmarkCache{}
	}
	return &RedisBookmarkCache{
		rdb:    rdb,
		logger: logger,
	}
}

// cachedBookmark is the serialization format for cached bookmarks.
type cachedBookmark struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	IsFavorite  bool      `json:"is_favorite"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *RedisBookmarkCache) cacheKey(id string) string {
	return bookmarkCachePrefix + id
}

// Get retrieves a bookmark from Redis cache. Errors are treated as misses.
func (c *RedisBookmarkCache) Get(ctx context.Context, id string) (*domain.Bookmark, error) {
	data, err := c.rdb.Get(ctx, c.cacheKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("failed to get bookmark from cache", zap.String("id", id), zap.Error(err))
		}
		return nil, nil
	}

	var cached cachedBookmark
	if err := json.Unmarshal(data, &cached); err != nil {
		c.logger.Warn("failed to unmarshal cached bookmark", zap.String("id", id), zap.Error(err))
		return nil, nil
	}

	return &domain.Bookmark{
		ID:          cached.ID,
		Title:       cached.Title,
		URL:         cached.URL,
		Description: cached.Description,
		IsFavorite:  cached.IsFavorite,
		CreatedAt:   cached.CreatedAt,
		UpdatedAt:   cached.UpdatedAt,
	}, nil
}

// Set stores a bookmark in Redis cache. Cache failures never fail the caller.
func (c *RedisBookmarkCache) Set(ctx context.Context, b *domain.Bookmark) error {
	cached := cachedBookmark{
		ID:          b.ID,
		Title:       b.Title,
		URL:         b.URL,
		Description: b.Description,
		IsFavorite:  b.IsFavorite,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}

	data, err := json.Marshal(cached)
	if err != nil {
		c.logger.Warn("failed to marshal bookmark for cache", zap.String("id", b.ID), zap.Error(err))
		return nil
	}

	if err := c.rdb.Set(ctx, c.cacheKey(b.ID), data, bookmarkCacheTTL).Err(); err != nil {
		c.logger.Warn("failed to cache bookmark", zap.String("id", b.ID), zap.Error(err))
	}

	return nil
}

// Invalidate removes a bookmark from Redis cache.
func (c *RedisBookmarkCache) Invalidate(ctx context.Context, id string) error {
	if err := c.rdb.Del(ctx, c.cacheKey(id)).Err(); err != nil {
		c.logger.Warn("failed to invalidate bookmark cache", zap.String("id", id), zap.Error(err))
	}
	return nil
}

// noopBookmarkCache is used when Redis is not configured.
type noopBookmarkCache struct{}

func (c *noopBookmarkCache) Get(context.Context, string) (*domain.Bookmark, error) {
	return nil, nil
}

func (c *noopBookmarkCache) Set(context.Context, *domain.Bookmark) error {
	return nil
}

func (c *noopBookmarkCache) Invalidate(context.Context, string) error {
	return nil
}
