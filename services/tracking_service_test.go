package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestUpsertDaily_PartialUpdates(t *testing.T) {
	pool := setupTestDB(t)

	profileService := NewProfileService(pool)
	svc := NewTrackingService(pool, profileService)
	ctx := context.Background()

	// A far-past date keeps the row out of the live history windows.
	date := time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC)
	t.Cleanup(func() {
		pool.Exec(context.Background(), "DELETE FROM daily_tracking WHERE date = $1", date)
	})

	m, err := svc.UpsertDaily(ctx, date, &TrackingUpdate{Steps: intPtr(4200)})
	require.NoError(t, err)
	assert.Equal(t, 4200, m.Steps)
	assert.Equal(t, 0.0, m.WaterLiters)
	assert.False(t, m.MoodLogged)

	// A second partial update must leave the other fields alone.
	m, err = svc.UpsertDaily(ctx, date, &TrackingUpdate{WaterLiters: floatPtr(1.5)})
	require.NoError(t, err)
	assert.Equal(t, 4200, m.Steps)
	assert.Equal(t, 1.5, m.WaterLiters)

	// Logging a mood flips mood_logged for good.
	m, err = svc.UpsertDaily(ctx, date, &TrackingUpdate{MoodScore: floatPtr(4)})
	require.NoError(t, err)
	assert.True(t, m.MoodLogged)
	require.NotNil(t, m.MoodScore)
	assert.Equal(t, 4.0, *m.MoodScore)

	m, err = svc.UpsertDaily(ctx, date, &TrackingUpdate{Steps: intPtr(9000)})
	require.NoError(t, err)
	assert.True(t, m.MoodLogged, "mood_logged must survive later mood-less updates")
}

func TestGetDay_EmptyDate(t *testing.T) {
	pool := setupTestDB(t)

	profileService := NewProfileService(pool)
	svc := NewTrackingService(pool, profileService)

	date := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	m, err := svc.GetDay(context.Background(), date)
	require.NoError(t, err)

	assert.Equal(t, 0, m.Steps)
	assert.Equal(t, 0.0, m.WaterLiters)
	assert.Equal(t, 0.0, m.SleepHours)
	assert.Nil(t, m.MoodScore)
	assert.False(t, m.MoodLogged)
}

func TestGetHistoryStatuses_WindowIsExactlyNDays(t *testing.T) {
	pool := setupTestDB(t)

	profileService := NewProfileService(pool)
	svc := NewTrackingService(pool, profileService)
	ctx := context.Background()

	// 35 consecutive logged days ending today; a 30-day window must return
	// exactly 30 of them, today included.
	today := time.Now().UTC().Truncate(24 * time.Hour)
	for i := 0; i < 35; i++ {
		_, err := svc.UpsertDaily(ctx, today.AddDate(0, 0, -i), &TrackingUpdate{Steps: intPtr(100 + i)})
		require.NoError(t, err)
	}
	t.Cleanup(func() {
		pool.Exec(context.Background(), "DELETE FROM daily_tracking WHERE date >= CURRENT_DATE - 34")
	})

	statuses, err := svc.GetHistoryStatuses(ctx, 30)
	require.NoError(t, err)
	assert.Len(t, statuses, 30)
}

func TestGetCalendar_FullMonthGrid(t *testing.T) {
	pool := setupTestDB(t)

	profileService := NewProfileService(pool)
	svc := NewTrackingService(pool, profileService)

	resp, err := svc.GetCalendar(context.Background(), 2020, 2)
	require.NoError(t, err)

	assert.Equal(t, 2020, resp.Year)
	assert.Equal(t, 2, resp.Month)
	assert.Len(t, resp.Days, 29, "leap February renders 29 entries even with no data")
}
