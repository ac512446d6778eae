package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tessera-live/tessera/internal/domain/event"
)

// cachedStatistic is the wire form of an event statistic. Entities are
// flattened because their fields are not exported.
type cachedStatistic struct {
	EventID        uint                 `json:"event_id"`
	ShortName      string               `json:"short_name"`
	DisplayName    string               `json:"display_name"`
	OrganizationID uint                 `json:"organization_id"`
	Location       string               `json:"location"`
	TimeZone       string               `json:"time_zone"`
	Currency       string               `json:"currency"`
	Begin          time.Time            `json:"begin"`
	End            time.Time            `json:"end"`
	View           *event.StatisticView `json:"view"`
}

// EventStatisticsCache is a Redis read-through cache for per-principal
// statistics listings. Writes to the reconciliation subsystem clear it
// wholesale rather than tracking which principals an event is visible to.
type EventStatisticsCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewEventStatisticsCache(client *redis.Client, ttl time.Duration) *EventStatisticsCache {
	return &EventStatisticsCache{
		client: client,
		prefix: "statistics:events:",
		ttl:    ttl,
	}
}

func (c *EventStatisticsCache) Get(ctx context.Context, principal string) ([]event.Statistic, bool, error) {
	data, err := c.client.Get(ctx, c.buildKey(principal)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read statistics from redis: %w", err)
	}

	var entries []cachedStatistic
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached statistics: %w", err)
	}

	stats := make([]event.Statistic, 0, len(entries))
	for _, entry := range entries {
		ev, err := event.ReconstructEvent(
			entry.EventID,
			entry.ShortName,
			entry.DisplayName,
			entry.OrganizationID,
			entry.Location,
			entry.TimeZone,
			entry.Currency,
			entry.Begin,
			entry.End,
		)
		if err != nil {
			return nil, false, fmt.Errorf("invalid cached event %d: %w", entry.EventID, err)
		}
		stats = append(stats, event.Statistic{Event: ev, View: entry.View})
	}
	return stats, true, nil
}

func (c *EventStatisticsCache) Set(ctx context.Context, principal string, stats []event.Statistic) error {
	entries := make([]cachedStatistic, 0, len(stats))
	for _, s := range stats {
		entries = append(entries, cachedStatistic{
			EventID:        s.Event.ID(),
			ShortName:      s.Event.ShortName(),
			DisplayName:    s.Event.DisplayName(),
			OrganizationID: s.Event.OrganizationID(),
			Location:       s.Event.Location(),
			TimeZone:       s.Event.TimeZone(),
			Currency:       s.Event.Currency(),
			Begin:          s.Event.Begin(),
			End:            s.Event.End(),
			View:           s.View,
		})
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal statistics: %w", err)
	}

	if err := c.client.Set(ctx, c.buildKey(principal), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store statistics in redis: %w", err)
	}
	return nil
}

// Clear drops every cached listing. Invoked after payment reconciliation
// writes, which can shift the counts of any principal's view.
func (c *EventStatisticsCache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete cached statistics key: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan statistics keys: %w", err)
	}
	return nil
}

func (c *EventStatisticsCache) buildKey(principal string) string {
	return c.prefix + principal
}
