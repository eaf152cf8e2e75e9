package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fitnessCheckAPI/internal/goals"
)

func TestAggregate(t *testing.T) {
	g := goals.UserGoals{StepGoal: 10000, WaterGoalLiters: 2.0, SleepGoalHours: 8.0}
	m := DailyMeasurement{
		Date:        time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Steps:       10000,
		WaterLiters: 1.8,
		SleepHours:  8.0,
	}

	status := Aggregate(m, g)

	assert.True(t, status.StepsAchieved, "exactly meeting the goal counts")
	assert.False(t, status.WaterAchieved)
	assert.True(t, status.SleepAchieved)
	assert.False(t, status.MoodLogged)
	assert.InDelta(t, 2.0/3.0, OverallCompletionRatio(status), 1e-9)
	assert.False(t, IsPerfectDay(status))
}

func TestAggregate_PerfectDay(t *testing.T) {
	g := goals.Defaults()
	m := DailyMeasurement{Steps: 12000, WaterLiters: 2.5, SleepHours: 8.5, MoodLogged: true}

	status := Aggregate(m, g)

	assert.True(t, IsPerfectDay(status))
	assert.Equal(t, 1.0, OverallCompletionRatio(status))
	assert.True(t, status.MoodLogged)
}

func TestOverallCompletionRatio_ExcludesMood(t *testing.T) {
	status := DayStatus{MoodLogged: true}
	assert.Equal(t, 0.0, OverallCompletionRatio(status))
}

func TestValidateUpdate(t *testing.T) {
	steps := func(v int) *int { return &v }
	f := func(v float64) *float64 { return &v }

	tests := []struct {
		name   string
		steps  *int
		water  *float64
		sleep  *float64
		mood   *float64
		wantOK bool
	}{
		{"all nil", nil, nil, nil, nil, true},
		{"in range", steps(8000), f(1.5), f(7.5), f(6), true},
		{"mood at bounds", nil, nil, nil, f(1), true},
		{"negative steps", steps(-500), nil, nil, nil, false},
		{"negative water", nil, f(-0.1), nil, nil, false},
		{"negative sleep", nil, nil, f(-8), nil, false},
		{"mood too low", nil, nil, nil, f(0.5), false},
		{"mood too high", nil, nil, nil, f(50), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpdate(tt.steps, tt.water, tt.sleep, tt.mood)
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrValidation)
			}
		})
	}
}

func TestAggregate_ZeroGoalsDegenerate(t *testing.T) {
	// Non-positive goals are rejected at the boundary, but if a zero goal
	// slips through every zero measurement trivially meets it.
	g := goals.UserGoals{StepGoal: 0, WaterGoalLiters: 0, SleepGoalHours: 0}
	status := Aggregate(DailyMeasurement{}, g)

	assert.True(t, IsPerfectDay(status))
}
