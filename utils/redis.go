package utils

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps the Redis client used for listing-response caching. A nil
// *Cache is valid and behaves as a cache that never hits, so handlers work
// unchanged when Redis is not configured.
type Cache struct {
	client *redis.Client
}

func NewCache(addr, password string) *Cache {
	return &Cache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       0,
		}),
	}
}

// Get loads key into dest, reporting whether it was present.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if c == nil {
		return false, nil
	}
	data, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(data), dest)
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

// InvalidatePrefix drops every key under prefix. Used after property
// mutations so list responses are never served stale.
func (c *Cache) InvalidatePrefix(ctx context.Context, prefix string) error {
	if c == nil {
		return nil
	}
	keys, err := c.client.Keys(ctx, prefix+":*").Result()
	if err != nil || len(keys) == 0 {
		return err
	}
	return c.client.Del(ctx, keys...).Err()
}

// QueryKey builds a deterministic cache key from a query-parameter map:
// params are sorted by name, joined, and hashed so key length stays bounded.
func QueryKey(prefix string, params map[string]string) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var builder strings.Builder
	for i, name := range names {
		if i > 0 {
			builder.WriteString(":")
		}
		builder.WriteString(name)
		builder.WriteString("=")
		builder.WriteString(params[name])
	}

	sum := md5.Sum([]byte(builder.String()))
	return prefix + ":" + hex.EncodeToString(sum[:])
}
