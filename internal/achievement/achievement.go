package achievement

import (
	"time"

	"github.com/google/uuid"

	"fitnessCheckAPI/internal/tracking"
)

type Category string

const (
	CategorySteps       Category = "steps"
	CategoryWater       Category = "water"
	CategorySleep       Category = "sleep"
	CategoryMeditation  Category = "meditation"
	CategoryConsistency Category = "consistency"
)

// Achievement is a one-way unlockable badge. Completed and CompletedDate
// move together, exactly once, and are never reverted.
type Achievement struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	Description   string     `json:"description" db:"description"`
	Category      Category   `json:"category" db:"category"`
	TargetValue   int        `json:"target_value" db:"target_value"`
	Completed     bool       `json:"completed" db:"completed"`
	CompletedDate *time.Time `json:"completed_date,omitempty" db:"completed_date"`
}

// Input is the snapshot an evaluation runs against. History must be ordered
// by date ascending. MeditationSessions is the externally counted session
// total; session counting itself happens outside this package.
type Input struct {
	History            []tracking.DayStatus
	MeditationSessions int
	EvaluatedAt        time.Time
}

// Evaluate returns the achievement with its unlock state recomputed against
// the input. Already-completed achievements are returned unchanged, so the
// call is idempotent and an unlock can never be reverted.
func Evaluate(a Achievement, in Input) Achievement {
	if a.Completed {
		return a
	}

	switch a.Category {
	case CategorySteps:
		unlockOnDayCount(&a, in.History, func(s tracking.DayStatus) bool { return s.StepsAchieved })
	case CategoryWater:
		unlockOnDayCount(&a, in.History, func(s tracking.DayStatus) bool { return s.WaterAchieved })
	case CategorySleep:
		unlockOnDayCount(&a, in.History, func(s tracking.DayStatus) bool { return s.SleepAchieved })
	case CategoryConsistency:
		unlockOnStreak(&a, in.History)
	case CategoryMeditation:
		if in.MeditationSessions >= a.TargetValue {
			unlock(&a, in.EvaluatedAt)
		}
	}

	return a
}

// unlockOnDayCount unlocks when the number of qualifying days reaches the
// target, dated to the day that completed the count.
func unlockOnDayCount(a *Achievement, history []tracking.DayStatus, qualifies func(tracking.DayStatus) bool) {
	count := 0
	for _, day := range history {
		if !qualifies(day) {
			continue
		}
		count++
		if count >= a.TargetValue {
			unlock(a, day.Date)
			return
		}
	}
}

// unlockOnStreak unlocks when a run of target-many consecutive calendar
// dates are all perfect days, dated to the last day of the run.
func unlockOnStreak(a *Achievement, history []tracking.DayStatus) {
	run := 0
	var prev time.Time
	for _, day := range history {
		if !tracking.IsPerfectDay(day) {
			run = 0
			prev = time.Time{}
			continue
		}
		if !prev.IsZero() && !sameDate(prev.AddDate(0, 0, 1), day.Date) {
			run = 0
		}
		run++
		prev = day.Date
		if run >= a.TargetValue {
			unlock(a, day.Date)
			return
		}
	}
}

func unlock(a *Achievement, at time.Time) {
	a.Completed = true
	a.CompletedDate = &at
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
