package tracking

import (
	"errors"
	"fmt"
	"time"

	"fitnessCheckAPI/internal/goals"
)

// ErrValidation is returned when measurement values are rejected at the boundary.
var ErrValidation = errors.New("validation failed")

// Mood comes from a fixed 1..10 selector in the app.
const (
	MinMoodScore = 1.0
	MaxMoodScore = 10.0
)

// DailyMeasurement is the raw recorded values for one calendar date.
type DailyMeasurement struct {
	Date        time.Time `json:"date" db:"date"`
	Steps       int       `json:"steps" db:"steps"`
	WaterLiters float64   `json:"water_liters" db:"water_liters"`
	SleepHours  float64   `json:"sleep_hours" db:"sleep_hours"`
	MoodScore   *float64  `json:"mood_score,omitempty" db:"mood_score"`
	MoodLogged  bool      `json:"mood_logged" db:"mood_logged"`
}

// DayStatus is the derived per-goal achievement for one date. It is computed
// on demand from a measurement and the current goals and never persisted, so
// it cannot go stale when goals change.
type DayStatus struct {
	Date          time.Time `json:"date"`
	StepsAchieved bool      `json:"steps_achieved"`
	WaterAchieved bool      `json:"water_achieved"`
	SleepAchieved bool      `json:"sleep_achieved"`
	MoodLogged    bool      `json:"mood_logged"`
}

// ValidateUpdate checks a partial measurement edit before it is stored.
// Nil fields are skipped, matching the one-field-at-a-time increment inputs.
func ValidateUpdate(steps *int, waterLiters, sleepHours, moodScore *float64) error {
	if steps != nil && *steps < 0 {
		return fmt.Errorf("%w: steps cannot be negative", ErrValidation)
	}
	if waterLiters != nil && *waterLiters < 0 {
		return fmt.Errorf("%w: water cannot be negative", ErrValidation)
	}
	if sleepHours != nil && *sleepHours < 0 {
		return fmt.Errorf("%w: sleep hours cannot be negative", ErrValidation)
	}
	if moodScore != nil && (*moodScore < MinMoodScore || *moodScore > MaxMoodScore) {
		return fmt.Errorf("%w: mood score must be between %v and %v", ErrValidation, MinMoodScore, MaxMoodScore)
	}
	return nil
}

// Aggregate applies the goal predicates to a day's measurement.
func Aggregate(m DailyMeasurement, g goals.UserGoals) DayStatus {
	return DayStatus{
		Date:          m.Date,
		StepsAchieved: m.Steps >= g.StepGoal,
		WaterAchieved: m.WaterLiters >= g.WaterGoalLiters,
		SleepAchieved: m.SleepHours >= g.SleepGoalHours,
		MoodLogged:    m.MoodLogged,
	}
}

// OverallCompletionRatio is the share of the three core goals met, in [0,1].
// Mood is informational and excluded from the ratio.
func OverallCompletionRatio(s DayStatus) float64 {
	met := 0
	if s.StepsAchieved {
		met++
	}
	if s.WaterAchieved {
		met++
	}
	if s.SleepAchieved {
		met++
	}
	return float64(met) / 3.0
}

// IsPerfectDay reports whether all three core goals were met.
func IsPerfectDay(s DayStatus) bool {
	return s.StepsAchieved && s.WaterAchieved && s.SleepAchieved
}
