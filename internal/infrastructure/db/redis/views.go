package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ViewCounter keeps per-post view totals in Redis.
// Key format: views:<blog_id>
type ViewCounter struct {
	client *redis.Client
}

// NewViewCounter creates a ViewCounter wrapping the given Redis client.
func NewViewCounter(client *redis.Client) *ViewCounter {
	return &ViewCounter{client: client}
}

// Incr bumps the counter for a post and returns the new total.
func (v *ViewCounter) Incr(ctx context.Context, blogID string) (int64, error) {
	n, err := v.client.Incr(ctx, v.key(blogID)).Result()
	if err != nil {
		return 0, fmt.Errorf("view incr: %w", err)
	}
	return n, nil
}

// Get returns the current total for a post. A post that has never been
// viewed reports zero.
func (v *ViewCounter) Get(ctx context.Context, blogID string) (int64, error) {
	n, err := v.client.Get(ctx, v.key(blogID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("view get: %w", err)
	}
	return n, nil
}

func (v *ViewCounter) key(blogID string) string {
	return fmt.Sprintf("views:%s", blogID)
}
