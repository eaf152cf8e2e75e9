package goals

import (
	"errors"
	"fmt"
)

// ErrValidation is returned when goal values are rejected at the boundary.
var ErrValidation = errors.New("validation failed")

const (
	DefaultStepGoal  = 10000
	DefaultWaterGoal = 2.0
	DefaultSleepGoal = 8.0
)

// UserGoals holds the user's target values for the three tracked metrics.
type UserGoals struct {
	StepGoal        int     `json:"step_goal" db:"step_goal"`
	WaterGoalLiters float64 `json:"water_goal_liters" db:"water_goal"`
	SleepGoalHours  float64 `json:"sleep_goal_hours" db:"sleep_goal"`
}

// Defaults returns the goals every fresh install starts with.
func Defaults() UserGoals {
	return UserGoals{
		StepGoal:        DefaultStepGoal,
		WaterGoalLiters: DefaultWaterGoal,
		SleepGoalHours:  DefaultSleepGoal,
	}
}

// Validate rejects non-positive goal values. The mobile UI lets these
// through, so the check lives here instead.
func (g UserGoals) Validate() error {
	if g.StepGoal <= 0 {
		return fmt.Errorf("%w: step goal must be greater than zero", ErrValidation)
	}
	if g.WaterGoalLiters <= 0 {
		return fmt.Errorf("%w: water goal must be greater than zero", ErrValidation)
	}
	if g.SleepGoalHours <= 0 {
		return fmt.Errorf("%w: sleep goal must be greater than zero", ErrValidation)
	}
	return nil
}
