package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fitnessCheckAPI/internal/tracking"
)

func perfectDay(date time.Time) tracking.DayStatus {
	return tracking.DayStatus{
		Date:          date,
		StepsAchieved: true,
		WaterAchieved: true,
		SleepAchieved: true,
	}
}

func TestBuildProfileStats_CurrentStreak(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	var statuses []tracking.DayStatus
	for i := 4; i >= 0; i-- {
		statuses = append(statuses, perfectDay(now.AddDate(0, 0, -i)))
	}

	result := buildProfileStats(statuses, now)

	assert.Equal(t, 5, result.CurrentStreak)
	assert.Equal(t, 5, result.LongestStreak)
	assert.Equal(t, 5, result.PerfectDaysTotal)
	assert.True(t, result.TodayPerfect)
}

func TestBuildProfileStats_BrokenStreakIsNotCurrent(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	// Three perfect days ending five days ago, nothing since.
	var statuses []tracking.DayStatus
	for i := 7; i >= 5; i-- {
		statuses = append(statuses, perfectDay(now.AddDate(0, 0, -i)))
	}

	result := buildProfileStats(statuses, now)

	assert.Equal(t, 0, result.CurrentStreak)
	assert.Equal(t, 3, result.LongestStreak)
	assert.False(t, result.TodayPerfect)
}

func TestBuildProfileStats_TrailingImperfectDay(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	// Streak ended yesterday; today is logged but not perfect. The streak
	// still counts as current.
	statuses := []tracking.DayStatus{
		perfectDay(now.AddDate(0, 0, -2)),
		perfectDay(now.AddDate(0, 0, -1)),
		{Date: now, StepsAchieved: true},
	}

	result := buildProfileStats(statuses, now)

	assert.Equal(t, 2, result.CurrentStreak)
	assert.False(t, result.TodayPerfect)
}

func TestBuildProfileStats_GapResetsRun(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	// Perfect days with a calendar gap in between are two separate runs.
	statuses := []tracking.DayStatus{
		perfectDay(now.AddDate(0, 0, -6)),
		perfectDay(now.AddDate(0, 0, -5)),
		perfectDay(now.AddDate(0, 0, -4)),
		perfectDay(now.AddDate(0, 0, -1)),
		perfectDay(now),
	}

	result := buildProfileStats(statuses, now)

	assert.Equal(t, 2, result.CurrentStreak)
	assert.Equal(t, 3, result.LongestStreak)
	assert.Equal(t, 5, result.PerfectDaysTotal)
}

func TestBuildProfileStats_Empty(t *testing.T) {
	result := buildProfileStats(nil, time.Now())

	assert.Equal(t, 0, result.CurrentStreak)
	assert.Equal(t, 0, result.LongestStreak)
	assert.Equal(t, 0, result.PerfectDaysTotal)
	assert.False(t, result.TodayPerfect)
}
