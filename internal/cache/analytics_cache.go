package cache

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"mindpulse/internal/model"
)

// AnalyticsCache keeps running counters over completed check-ins
type AnalyticsCache interface {
	RecordCheckIn(ctx context.Context, checkIn *model.CheckIn) error
	GetStats(ctx context.Context) (*model.CheckInStats, error)
	GetQuestionStats(ctx context.Context, questionID string) (*model.QuestionStats, error)
}

type analyticsCache struct {
	client *redis.Client
}

// NewAnalyticsCache creates a new analytics cache
func NewAnalyticsCache(client *redis.Client) AnalyticsCache {
	return &analyticsCache{client: client}
}

// Hash fields of the summary key
const (
	fieldCompleted    = "completed"
	fieldCrisis       = "crisis"
	fieldBranchPrefix = "branch:"
	fieldLabelPrefix  = "label:"
)

// Key helpers
func (c *analyticsCache) summaryKey() string {
	return "stats:checkins"
}

func (c *analyticsCache) questionKey(questionID string) string {
	return fmt.Sprintf("stats:q:%s", questionID)
}

func (c *analyticsCache) RecordCheckIn(ctx context.Context, checkIn *model.CheckIn) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		summary := c.summaryKey()
		pipe.HIncrBy(ctx, summary, fieldCompleted, 1)
		if checkIn.Crisis {
			pipe.HIncrBy(ctx, summary, fieldCrisis, 1)
		}
		pipe.HIncrBy(ctx, summary, fieldBranchPrefix+string(checkIn.Branch), 1)
		pipe.HIncrBy(ctx, summary, fieldLabelPrefix+checkIn.ProfileLabel, 1)

		for questionID, optionID := range checkIn.Answers {
			pipe.HIncrBy(ctx, c.questionKey(questionID), optionID, 1)
		}
		return nil
	})
	return err
}

func (c *analyticsCache) GetStats(ctx context.Context) (*model.CheckInStats, error) {
	fields, err := c.client.HGetAll(ctx, c.summaryKey()).Result()
	if err != nil {
		return nil, err
	}

	stats := &model.CheckInStats{
		Branches: make(map[string]int),
		Labels:   make(map[string]int),
	}
	for field, raw := range fields {
		n, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		switch {
		case field == fieldCompleted:
			stats.Completed = n
		case field == fieldCrisis:
			stats.Crisis = n
		case strings.HasPrefix(field, fieldBranchPrefix):
			stats.Branches[strings.TrimPrefix(field, fieldBranchPrefix)] = n
		case strings.HasPrefix(field, fieldLabelPrefix):
			stats.Labels[strings.TrimPrefix(field, fieldLabelPrefix)] = n
		}
	}
	return stats, nil
}

func (c *analyticsCache) GetQuestionStats(ctx context.Context, questionID string) (*model.QuestionStats, error) {
	fields, err := c.client.HGetAll(ctx, c.questionKey(questionID)).Result()
	if err != nil {
		return nil, err
	}

	stats := &model.QuestionStats{
		QuestionID:   questionID,
		OptionCounts: make(map[string]int, len(fields)),
	}
	for optionID, raw := range fields {
		n, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		stats.OptionCounts[optionID] = n
		stats.AnswerCount += n
	}
	return stats, nil
}
