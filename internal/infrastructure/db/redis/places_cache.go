package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/openmarket/marketplace-api/internal/core/ports"
)

const placesCacheTTL = 5 * time.Minute

// PlacesCache stores recent autocomplete results so repeated keystrokes do
// not hit the upstream quota.
// Key format: places:<lowercased input>
type PlacesCache struct {
	client *redis.Client
}

func NewPlacesCache(client *redis.Client) *PlacesCache {
	return &PlacesCache{client: client}
}

// Get returns the cached result for an input, or (nil, nil) on a miss.
func (c *PlacesCache) Get(ctx context.Context, input string) (*ports.PlacesResult, error) {
	raw, err := c.client.Get(ctx, c.key(input)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("places cache get: %w", err)
	}

	var result ports.PlacesResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("places cache decode: %w", err)
	}
	return &result, nil
}

// Set stores a result with a short TTL.
func (c *PlacesCache) Set(ctx context.Context, input string, result *ports.PlacesResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("places cache encode: %w", err)
	}
	if err := c.client.Set(ctx, c.key(input), raw, placesCacheTTL).Err(); err != nil {
		return fmt.Errorf("places cache set: %w", err)
	}
	return nil
}

func (c *PlacesCache) key(input string) string {
	return "places:" + strings.ToLower(strings.TrimSpace(input))
}
