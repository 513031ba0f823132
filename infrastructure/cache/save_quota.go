package cache

import (
	"context"
	"fmt"
	"time"

	"mood-playlist/domain/repository"

	"github.com/redis/go-redis/v9"
)

// SaveQuota tracks per-user daily save counts in redis. Keys carry the
// local date so a counter naturally rolls over at midnight; the TTL is a
// safety net that cleans up stale keys. A nil client disables quota
// tracking (counts read as zero).
type SaveQuota struct{ client *redis.Client }

func NewSaveQuota(client *redis.Client) repository.ISaveQuota {
	return &SaveQuota{client: client}
}

func quotaKey(userID string, now time.Time) string {
	return fmt.Sprintf("mood:save-count:%s:%s", userID, now.Format("2006-01-02"))
}

// Increment bumps today's counter and returns the new value
func (q *SaveQuota) Increment(ctx context.Context, userID string) (int64, error) {
	if q.client == nil {
		return 0, nil
	}
	key := quotaKey(userID, time.Now())
	count, err := q.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		q.client.Expire(ctx, key, 48*time.Hour)
	}
	return count, nil
}

// Count returns today's counter without modifying it
func (q *SaveQuota) Count(ctx context.Context, userID string) (int64, error) {
	if q.client == nil {
		return 0, nil
	}
	count, err := q.client.Get(ctx, quotaKey(userID, time.Now())).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return count, err
}
