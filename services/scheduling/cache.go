package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"agenda/models"
)

const calendarCacheVersionKey = "calendar:version"

// CalendarCache keeps projected calendar feeds in Redis. Keys embed a version
// counter; bumping the counter on any write invalidates every cached window
// at once without scanning for keys.
type CalendarCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// Get returns the cached feed for the query, if a fresh copy exists.
func (c *CalendarCache) Get(ctx context.Context, q CalendarQuery) ([]models.CalendarEvent, bool, error) {
	key, err := c.key(ctx, q)
	if err != nil {
		return nil, false, err
	}
	cached, err := c.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read calendar cache: %w", err)
	}
	var events []models.CalendarEvent
	if err := json.Unmarshal([]byte(cached), &events); err != nil {
		// A stale or corrupt entry falls through to re-projection.
		return nil, false, nil
	}
	return events, true, nil
}

// Set stores the projected feed under the current cache version.
func (c *CalendarCache) Set(ctx context.Context, q CalendarQuery, events []models.CalendarEvent) error {
	key, err := c.key(ctx, q)
	if err != nil {
		return err
	}
	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to marshal calendar events: %w", err)
	}
	ttl := c.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if err := c.Client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write calendar cache: %w", err)
	}
	return nil
}

// Invalidate bumps the version counter, orphaning every cached window.
// Orphaned entries expire on their own TTL.
func (c *CalendarCache) Invalidate(ctx context.Context) error {
	if err := c.Client.Incr(ctx, calendarCacheVersionKey).Err(); err != nil {
		return fmt.Errorf("failed to bump calendar cache version: %w", err)
	}
	return nil
}

func (c *CalendarCache) key(ctx context.Context, q CalendarQuery) (string, error) {
	version, err := c.Client.Get(ctx, calendarCacheVersionKey).Int64()
	if err != nil && err != redis.Nil {
		return "", fmt.Errorf("failed to read calendar cache version: %w", err)
	}

	types := make([]string, len(q.Types))
	for i, t := range q.Types {
		types[i] = string(t)
	}
	statuses := make([]string, len(q.Statuses))
	for i, st := range q.Statuses {
		statuses[i] = string(st)
	}
	return fmt.Sprintf("calendar:%d:%s:%d:%d:%s:%s:%s",
		version,
		q.ContactID,
		q.StartDate.UTC().Unix(),
		q.EndDate.UTC().Unix(),
		strings.Join(types, ","),
		strings.Join(statuses, ","),
		q.ServiceID,
	), nil
}
