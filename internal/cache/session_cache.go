package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mindpulse/internal/model"
)

// SessionCache parks in-flight check-ins between requests
type SessionCache interface {
	Set(ctx context.Context, active *model.ActiveCheckIn) error
	Get(ctx context.Context, id string) (*model.ActiveCheckIn, error)
	Delete(ctx context.Context, id string) error
}

type sessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionCache creates a new session cache. Each write refreshes the TTL.
func NewSessionCache(client *redis.Client, ttl time.Duration) SessionCache {
	return &sessionCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *sessionCache) key(id string) string {
	return fmt.Sprintf("checkin:%s", id)
}

func (c *sessionCache) Set(ctx context.Context, active *model.ActiveCheckIn) error {
	data, err := json.Marshal(active)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(active.ID), data, c.ttl).Err()
}

func (c *sessionCache) Get(ctx context.Context, id string) (*model.ActiveCheckIn, error) {
	data, err := c.client.Get(ctx, c.key(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var active model.ActiveCheckIn
	if err := json.Unmarshal([]byte(data), &active); err != nil {
		return nil, err
	}
	return &active, nil
}

func (c *sessionCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}
