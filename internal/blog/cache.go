package blog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// Cache keeps fetched feeds between requests. A miss is (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) ([]Post, bool, error)
	Set(ctx context.Context, key string, posts []Post, ttl time.Duration) error
}

type memoryEntry struct {
	posts     []Post
	expiresAt time.Time
}

type MemoryCache struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]memoryEntry
}

func NewMemoryCache(now func() time.Time) *MemoryCache {
	if now == nil {
		now = time.Now
	}

	return &MemoryCache{
		now:     now,
		entries: make(map[string]memoryEntry),
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]Post, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}

	if !c.now().Before(entry.expiresAt) {
		delete(c.entries, key)

		return nil, false, nil
	}

	out := make([]Post, len(entry.posts))
	copy(out, entry.posts)

	return out, true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, posts []Post, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := make([]Post, len(posts))
	copy(stored, posts)

	c.entries[key] = memoryEntry{posts: stored, expiresAt: c.now().Add(ttl)}

	return nil
}

type RedisCache struct {
	rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]Post, bool, error) {
	cached, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("redis get %v: %w", key, err)
	}

	var posts []Post
	if err := json.Unmarshal(cached, &posts); err != nil {
		return nil, false, fmt.Errorf("decode cached posts: %w", err)
	}

	return posts, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, posts []Post, ttl time.Duration) error {
	payload, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("encode posts: %w", err)
	}

	if err := c.rdb.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %v: %w", key, err)
	}

	return nil
}
