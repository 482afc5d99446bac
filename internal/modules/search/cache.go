// README: Redis-backed cache for parsed search results.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"tripdeck/internal/modules/trip"
)

const defaultTTL = time.Hour

// Cache wraps a Redis client and provides typed get/set for search results.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a Cache with the given TTL; ttl <= 0 falls back to
// the 1-hour default.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// key derives the Redis key from the query fields that affect the prompt.
// Place names are normalised so "Paris" and " paris " share an entry.
func key(q trip.Query) string {
	return fmt.Sprintf("search:%s:%s:%s:%s:%d:%d",
		strings.ToLower(strings.TrimSpace(q.Origin)),
		strings.ToLower(strings.TrimSpace(q.Destination)),
		q.CheckIn.Format("2006-01-02"),
		q.CheckOut.Format("2006-01-02"),
		q.Guests,
		q.Rooms,
	)
}

// Get retrieves a cached search result for the query.
// Returns nil, nil on a cache miss (not an error).
func (c *Cache) Get(ctx context.Context, q trip.Query) (*Result, error) {
	val, err := c.client.Get(ctx, key(q)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get for %s: %w", q.Destination, err)
	}

	var res Result
	if err := json.Unmarshal([]byte(val), &res); err != nil {
		return nil, fmt.Errorf("unmarshaling cached result for %s: %w", q.Destination, err)
	}

	return &res, nil
}

// Set stores a search result with the configured TTL.
func (c *Cache) Set(ctx context.Context, q trip.Query, res *Result) error {
	if res == nil {
		return nil
	}

	b, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshaling result for %s: %w", q.Destination, err)
	}

	if err := c.client.Set(ctx, key(q), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set for %s: %w", q.Destination, err)
	}

	return nil
}

// Delete removes the cached entry for the query.
func (c *Cache) Delete(ctx context.Context, q trip.Query) error {
	if err := c.client.Del(ctx, key(q)).Err(); err != nil {
		return fmt.Errorf("cache delete for %s: %w", q.Destination, err)
	}
	return nil
}
