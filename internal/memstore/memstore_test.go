package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindpulse/internal/cache"
	"mindpulse/internal/model"
	"mindpulse/internal/repository"
)

var (
	_ cache.SessionCache     = (*SessionCache)(nil)
	_ cache.TrendCache       = (*TrendCache)(nil)
	_ cache.AnalyticsCache   = (*AnalyticsCache)(nil)
	_ repository.CheckInRepo = (*CheckInRepo)(nil)

	_ repository.QuestionBankRepo = (*QuestionBankRepo)(nil)
)

func TestTrendCache_KeepsNewestPoints(t *testing.T) {
	c := NewTrendCache()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < cache.MaxTrendPoints+5; i++ {
		require.NoError(t, c.Record(ctx, "u_1", model.TrendPoint{At: base.Add(time.Duration(i) * time.Hour)}))
	}

	all, err := c.Recent(ctx, "u_1", 0)
	require.NoError(t, err)
	assert.Len(t, all, cache.MaxTrendPoints)
	assert.Equal(t, base.Add(time.Duration(cache.MaxTrendPoints+4)*time.Hour), all[0].At)

	two, err := c.Recent(ctx, "u_1", 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)
}

func TestCheckInRepo_ListByUserNewestFirst(t *testing.T) {
	r := NewCheckInRepo()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, r.Save(ctx, &model.CheckIn{ID: "a", UserID: "u_1", CompletedAt: base}))
	require.NoError(t, r.Save(ctx, &model.CheckIn{ID: "b", UserID: "u_1", CompletedAt: base.Add(time.Hour)}))
	require.NoError(t, r.Save(ctx, &model.CheckIn{ID: "c", UserID: "u_2", CompletedAt: base}))

	list, err := r.ListByUser(ctx, "u_1", 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)

	missing, err := r.GetByID(ctx, "zzz")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
