// Package memstore provides in-memory implementations of the repositories
// and caches for tests.
package memstore

import (
	"context"
	"sort"
	"sync"

	"mindpulse/internal/cache"
	"mindpulse/internal/model"
	"mindpulse/internal/repository"
)

// SessionCache is an in-memory cache.SessionCache without expiry
type SessionCache struct {
	mu    sync.Mutex
	items map[string]model.ActiveCheckIn
}

func NewSessionCache() *SessionCache {
	return &SessionCache{items: make(map[string]model.ActiveCheckIn)}
}

func (c *SessionCache) Set(_ context.Context, active *model.ActiveCheckIn) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[active.ID] = *active
	return nil
}

func (c *SessionCache) Get(_ context.Context, id string) (*model.ActiveCheckIn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	active, ok := c.items[id]
	if !ok {
		return nil, nil
	}
	return &active, nil
}

func (c *SessionCache) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, id)
	return nil
}

// TrendCache is an in-memory cache.TrendCache
type TrendCache struct {
	mu     sync.Mutex
	points map[string][]model.TrendPoint
}

func NewTrendCache() *TrendCache {
	return &TrendCache{points: make(map[string][]model.TrendPoint)}
}

func (c *TrendCache) Record(_ context.Context, userID string, point model.TrendPoint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	points := append([]model.TrendPoint{point}, c.points[userID]...)
	if len(points) > cache.MaxTrendPoints {
		points = points[:cache.MaxTrendPoints]
	}
	c.points[userID] = points
	return nil
}

func (c *TrendCache) Recent(_ context.Context, userID string, limit int) ([]model.TrendPoint, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	points := c.points[userID]
	if limit > 0 && len(points) > limit {
		points = points[:limit]
	}
	return append([]model.TrendPoint{}, points...), nil
}

// CheckInRepo is an in-memory repository.CheckInRepo. When SaveErr is set,
// Save fails with it.
type CheckInRepo struct {
	mu       sync.Mutex
	checkIns map[string]model.CheckIn
	SaveErr  error
}

func NewCheckInRepo() *CheckInRepo {
	return &CheckInRepo{checkIns: make(map[string]model.CheckIn)}
}

func (r *CheckInRepo) Save(_ context.Context, checkIn *model.CheckIn) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.checkIns[checkIn.ID] = *checkIn
	return nil
}

func (r *CheckInRepo) GetByID(_ context.Context, id string) (*model.CheckIn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.checkIns[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CheckInRepo) ListByUser(_ context.Context, userID string, limit int64) ([]*model.CheckIn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*model.CheckIn{}
	for _, c := range r.checkIns {
		if c.UserID == userID {
			c := c
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CompletedAt.After(out[j].CompletedAt) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

// QuestionBankRepo is an in-memory repository.QuestionBankRepo
type QuestionBankRepo struct {
	mu    sync.Mutex
	banks map[string]model.QuestionBank
}

func NewQuestionBankRepo() *QuestionBankRepo {
	return &QuestionBankRepo{banks: make(map[string]model.QuestionBank)}
}

func (r *QuestionBankRepo) Get(_ context.Context, id string) (*model.QuestionBank, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.banks[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *QuestionBankRepo) Save(_ context.Context, bank *model.QuestionBank) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if bank.ID == "" {
		bank.ID = repository.DefaultBankID
	}
	r.banks[bank.ID] = *bank
	return nil
}

// AnalyticsCache is an in-memory cache.AnalyticsCache
type AnalyticsCache struct {
	mu        sync.Mutex
	stats     model.CheckInStats
	questions map[string]map[string]int
}

func NewAnalyticsCache() *AnalyticsCache {
	return &AnalyticsCache{
		stats: model.CheckInStats{
			Branches: make(map[string]int),
			Labels:   make(map[string]int),
		},
		questions: make(map[string]map[string]int),
	}
}

func (c *AnalyticsCache) RecordCheckIn(_ context.Context, checkIn *model.CheckIn) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.Completed++
	if checkIn.Crisis {
		c.stats.Crisis++
	}
	c.stats.Branches[string(checkIn.Branch)]++
	c.stats.Labels[checkIn.ProfileLabel]++
	for questionID, optionID := range checkIn.Answers {
		if c.questions[questionID] == nil {
			c.questions[questionID] = make(map[string]int)
		}
		c.questions[questionID][optionID]++
	}
	return nil
}

func (c *AnalyticsCache) GetStats(_ context.Context) (*model.CheckInStats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := model.CheckInStats{
		Completed: c.stats.Completed,
		Crisis:    c.stats.Crisis,
		Branches:  make(map[string]int, len(c.stats.Branches)),
		Labels:    make(map[string]int, len(c.stats.Labels)),
	}
	for k, v := range c.stats.Branches {
		out.Branches[k] = v
	}
	for k, v := range c.stats.Labels {
		out.Labels[k] = v
	}
	return &out, nil
}

func (c *AnalyticsCache) GetQuestionStats(_ context.Context, questionID string) (*model.QuestionStats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := &model.QuestionStats{QuestionID: questionID, OptionCounts: make(map[string]int)}
	for optionID, n := range c.questions[questionID] {
		out.OptionCounts[optionID] = n
		out.AnswerCount += n
	}
	return out, nil
}
