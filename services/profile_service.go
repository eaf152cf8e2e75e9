package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fitnessCheckAPI/internal/goals"
	"fitnessCheckAPI/internal/stats"
	"fitnessCheckAPI/internal/tracking"
	"fitnessCheckAPI/internal/user"
	"fitnessCheckAPI/utils"
)

type ProfileService struct {
	db *pgxpool.Pool
}

func NewProfileService(db *pgxpool.Pool) *ProfileService {
	return &ProfileService{db: db}
}

// GetProfile returns the singleton profile, creating it with default goals
// on first access.
func (s *ProfileService) GetProfile(ctx context.Context) (*user.Profile, error) {
	query := `
	SELECT name, step_goal, water_goal, sleep_goal, profile_picture_index, created_at, updated_at
	FROM user_profile
	WHERE id = 1
	`

	profile := &user.Profile{}
	err := s.db.QueryRow(ctx, query).Scan(
		&profile.Name,
		&profile.Goals.StepGoal,
		&profile.Goals.WaterGoalLiters,
		&profile.Goals.SleepGoalHours,
		&profile.ProfilePictureIndex,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return s.createDefaultProfile(ctx)
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

func (s *ProfileService) createDefaultProfile(ctx context.Context) (*user.Profile, error) {
	defaults := goals.Defaults()

	query := `
	INSERT INTO user_profile (id, name, step_goal, water_goal, sleep_goal)
	VALUES (1, '', $1, $2, $3)
	ON CONFLICT (id) DO NOTHING
	RETURNING name, step_goal, water_goal, sleep_goal, profile_picture_index, created_at, updated_at
	`

	profile := &user.Profile{}
	err := s.db.QueryRow(ctx, query, defaults.StepGoal, defaults.WaterGoalLiters, defaults.SleepGoalHours).Scan(
		&profile.Name,
		&profile.Goals.StepGoal,
		&profile.Goals.WaterGoalLiters,
		&profile.Goals.SleepGoalHours,
		&profile.ProfilePictureIndex,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create default profile: %w", err)
	}

	return profile, nil
}

// UpdateProfile applies a partial edit. Goal fields go through the domain
// validation before anything is written; the update is all-or-nothing.
func (s *ProfileService) UpdateProfile(ctx context.Context, req *user.UpdateProfileRequest) (*user.Profile, error) {
	current, err := s.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	updated := current.Goals
	if req.StepGoal != nil {
		updated.StepGoal = *req.StepGoal
	}
	if req.WaterGoalLiters != nil {
		updated.WaterGoalLiters = *req.WaterGoalLiters
	}
	if req.SleepGoalHours != nil {
		updated.SleepGoalHours = *req.SleepGoalHours
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	name := current.Name
	if req.Name != "" {
		name = req.Name
	}
	pictureIndex := current.ProfilePictureIndex
	if req.ProfilePictureIndex != nil {
		pictureIndex = *req.ProfilePictureIndex
	}

	query := `
	UPDATE user_profile
	SET name = $1, step_goal = $2, water_goal = $3, sleep_goal = $4, profile_picture_index = $5, updated_at = NOW()
	WHERE id = 1
	RETURNING name, step_goal, water_goal, sleep_goal, profile_picture_index, created_at, updated_at
	`

	profile := &user.Profile{}
	err = s.db.QueryRow(
		ctx,
		query,
		name,
		updated.StepGoal,
		updated.WaterGoalLiters,
		updated.SleepGoalHours,
		pictureIndex,
	).Scan(
		&profile.Name,
		&profile.Goals.StepGoal,
		&profile.Goals.WaterGoalLiters,
		&profile.Goals.SleepGoalHours,
		&profile.ProfilePictureIndex,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return profile, nil
}

// ResetProfile restores the default goals. The row itself is never deleted.
func (s *ProfileService) ResetProfile(ctx context.Context) (*user.Profile, error) {
	defaults := goals.Defaults()

	query := `
	UPDATE user_profile
	SET step_goal = $1, water_goal = $2, sleep_goal = $3, updated_at = NOW()
	WHERE id = 1
	RETURNING name, step_goal, water_goal, sleep_goal, profile_picture_index, created_at, updated_at
	`

	profile := &user.Profile{}
	err := s.db.QueryRow(ctx, query, defaults.StepGoal, defaults.WaterGoalLiters, defaults.SleepGoalHours).Scan(
		&profile.Name,
		&profile.Goals.StepGoal,
		&profile.Goals.WaterGoalLiters,
		&profile.Goals.SleepGoalHours,
		&profile.ProfilePictureIndex,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return s.createDefaultProfile(ctx)
		}
		return nil, fmt.Errorf("failed to reset profile: %w", err)
	}

	return profile, nil
}

// GetProfileStats derives the dashboard summary. The whole history is
// aggregated against the current goals in memory, so a goal edit is
// reflected immediately without touching stored rows.
func (s *ProfileService) GetProfileStats(ctx context.Context) (*stats.ProfileStats, error) {
	profile, err := s.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	query := `
	SELECT date, steps, water_liters, sleep_hours, mood_score, mood_logged
	FROM daily_tracking
	ORDER BY date
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tracking history: %w", err)
	}
	defer rows.Close()

	var statuses []tracking.DayStatus
	for rows.Next() {
		var m tracking.DailyMeasurement
		if err := rows.Scan(&m.Date, &m.Steps, &m.WaterLiters, &m.SleepHours, &m.MoodScore, &m.MoodLogged); err != nil {
			return nil, fmt.Errorf("failed to scan tracking row: %w", err)
		}
		statuses = append(statuses, tracking.Aggregate(m, profile.Goals))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tracking rows: %w", err)
	}

	var achievementsCount int
	err = s.db.QueryRow(ctx, `SELECT COUNT(*) FROM achievements WHERE completed = TRUE`).Scan(&achievementsCount)
	if err != nil {
		return nil, fmt.Errorf("failed to count achievements: %w", err)
	}

	result := buildProfileStats(statuses, time.Now())
	result.AchievementsCount = achievementsCount
	result.WellnessScore = utils.CalculateWellnessScore(result.CurrentStreak, result.PerfectDaysTotal, achievementsCount)

	return result, nil
}

// buildProfileStats walks the date-ascending statuses once, counting perfect
// days per window and tracking streak runs of consecutive perfect dates.
func buildProfileStats(statuses []tracking.DayStatus, now time.Time) *stats.ProfileStats {
	result := &stats.ProfileStats{}

	weekStart := startOfWeek(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	run := 0
	lastRun := 0
	var prev time.Time
	var lastPerfect time.Time

	for _, day := range statuses {
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
		lastPerfect = day.Date
		lastRun = run

		if run > result.LongestStreak {
			result.LongestStreak = run
		}

		result.PerfectDaysTotal++
		if !day.Date.Before(weekStart) {
			result.PerfectDaysWeek++
		}
		if !day.Date.Before(monthStart) {
			result.PerfectDaysMonth++
		}
		if sameDate(day.Date, now) {
			result.TodayPerfect = true
		}
	}

	// The streak only counts as current if it reaches today or yesterday.
	if !lastPerfect.IsZero() && (sameDate(lastPerfect, now) || sameDate(lastPerfect.AddDate(0, 0, 1), now)) {
		result.CurrentStreak = lastRun
	}

	return result
}

func startOfWeek(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return day.AddDate(0, 0, -(weekday - 1))
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
