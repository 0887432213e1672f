package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const counterTTL = 48 * time.Hour

// EventCounter keeps daily per-type analytics tallies in Redis.
// Key format: events:<YYYY-MM-DD>:<type>
type EventCounter struct {
	client *redis.Client
}

func NewEventCounter(client *redis.Client) *EventCounter {
	return &EventCounter{client: client}
}

// IncrDaily bumps today's tally for the event type. Keys expire after
// counterTTL; the durable store in Mongo is the source of truth beyond that.
func (c *EventCounter) IncrDaily(ctx context.Context, eventType string) error {
	key := c.key(eventType, time.Now().UTC())
	pipe := c.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, counterTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("incr daily counter: %w", err)
	}
	return nil
}

// DailyCount reads the tally for a given type and day. Missing keys read as
// zero.
func (c *EventCounter) DailyCount(ctx context.Context, eventType string, day time.Time) (int64, error) {
	n, err := c.client.Get(ctx, c.key(eventType, day)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read daily counter: %w", err)
	}
	return n, nil
}

func (c *EventCounter) key(eventType string, day time.Time) string {
	return fmt.Sprintf("events:%s:%s", day.Format("2006-01-02"), eventType)
}
