package calendar

import (
	"time"

	"fitnessCheckAPI/internal/tracking"
)

type Day struct {
	Date          time.Time `json:"date"`
	StepsAchieved bool      `json:"steps_achieved"`
	WaterAchieved bool      `json:"water_achieved"`
	SleepAchieved bool      `json:"sleep_achieved"`
	MoodLogged    bool      `json:"mood_logged"`
	PerfectDay    bool      `json:"perfect_day"`
	IsToday       bool      `json:"is_today"`
}

type Response struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Days    []*Day  `json:"days"`
	Summary Summary `json:"summary"`
}

// Summary is the counters shown above the achievement calendar.
type Summary struct {
	PerfectDays           int `json:"perfect_days"`
	TotalDays             int `json:"total_days"`
	CompletionRatePercent int `json:"completion_rate_percent"`
	StepGoalsMet          int `json:"step_goals_met"`
	WaterGoalsMet         int `json:"water_goals_met"`
	SleepGoalsMet         int `json:"sleep_goals_met"`
}

// Summarize counts goal completions over a window of day statuses. The
// completion rate is floored integer percent, and an empty window yields
// all zeroes rather than a division error.
func Summarize(statuses []tracking.DayStatus) Summary {
	var s Summary
	s.TotalDays = len(statuses)

	for _, day := range statuses {
		if day.StepsAchieved {
			s.StepGoalsMet++
		}
		if day.WaterAchieved {
			s.WaterGoalsMet++
		}
		if day.SleepAchieved {
			s.SleepGoalsMet++
		}
		if tracking.IsPerfectDay(day) {
			s.PerfectDays++
		}
	}

	if s.TotalDays > 0 {
		s.CompletionRatePercent = s.PerfectDays * 100 / s.TotalDays
	}

	return s
}
