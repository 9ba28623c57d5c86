package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mindpulse/internal/model"
)

// MaxTrendPoints is how many recent check-ins are kept per user
const MaxTrendPoints = 30

// TrendCache keeps each user's recent completed check-ins in a ZSET
// scored by completion time
type TrendCache interface {
	Record(ctx context.Context, userID string, point model.TrendPoint) error
	Recent(ctx context.Context, userID string, limit int) ([]model.TrendPoint, error)
}

type trendCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTrendCache creates a new trend cache
func NewTrendCache(client *redis.Client) TrendCache {
	return &trendCache{
		client: client,
		ttl:    90 * 24 * time.Hour,
	}
}

func (c *trendCache) key(userID string) string {
	return fmt.Sprintf("user:%s:trend", userID)
}

func (c *trendCache) Record(ctx context.Context, userID string, point model.TrendPoint) error {
	data, err := json.Marshal(point)
	if err != nil {
		return err
	}

	key := c.key(userID)
	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, key, redis.Z{
			Score:  float64(point.At.Unix()),
			Member: string(data),
		})
		// Drop everything but the newest MaxTrendPoints
		pipe.ZRemRangeByRank(ctx, key, 0, -(MaxTrendPoints + 1))
		pipe.Expire(ctx, key, c.ttl)
		return nil
	})
	return err
}

func (c *trendCache) Recent(ctx context.Context, userID string, limit int) ([]model.TrendPoint, error) {
	if limit <= 0 || limit > MaxTrendPoints {
		limit = MaxTrendPoints
	}

	members, err := c.client.ZRevRange(ctx, c.key(userID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	points := make([]model.TrendPoint, 0, len(members))
	for _, m := range members {
		var p model.TrendPoint
		if err := json.Unmarshal([]byte(m), &p); err != nil {
			continue
		}
		points = append(points, p)
	}
	return points, nil
}
