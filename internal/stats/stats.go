package stats

// ProfileStats is the dashboard summary for the profile screen.
type ProfileStats struct {
	TodayPerfect      bool    `json:"today_perfect"`
	PerfectDaysWeek   int     `json:"perfect_days_week"`
	PerfectDaysMonth  int     `json:"perfect_days_month"`
	PerfectDaysTotal  int     `json:"perfect_days_total"`
	CurrentStreak     int     `json:"current_streak"`
	LongestStreak     int     `json:"longest_streak"`
	AchievementsCount int     `json:"achievements_count"`
	WellnessScore     float64 `json:"wellness_score"`
}
