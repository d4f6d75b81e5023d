package inbox

import (
	"context"
	"encoding/json"
	"fmt"

	"pullup-club/pkg/cache"
	"pullup-club/pkg/queue"

	"github.com/redis/go-redis/v9"
)

// Store keeps the most recent admin notifications, newest first.
type Store interface {
	Push(ctx context.Context, n queue.Notification) error
	Recent(ctx context.Context, limit int) ([]queue.Notification, error)
}

type redisStore struct {
	client *redis.Client
	size   int64
}

func NewRedisStore(client *redis.Client, size int) Store {
	if size <= 0 {
		size = 200
	}
	return &redisStore{client: client, size: int64(size)}
}

func (s *redisStore) Push(ctx context.Context, n queue.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, cache.AdminInboxKey, data)
	pipe.LTrim(ctx, cache.AdminInboxKey, 0, s.size-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}
	return nil
}

func (s *redisStore) Recent(ctx context.Context, limit int) ([]queue.Notification, error) {
	if limit <= 0 || int64(limit) > s.size {
		limit = int(s.size)
	}

	values, err := s.client.LRange(ctx, cache.AdminInboxKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read inbox: %w", err)
	}

	notifications := make([]queue.Notification, 0, len(values))
	for _, v := range values {
		var n queue.Notification
		if err := json.Unmarshal([]byte(v), &n); err != nil {
			continue
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}
