package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"fitnessCheckAPI/internal/achievement"
)

type AchievementService struct {
	db              *pgxpool.Pool
	trackingService *TrackingService
}

func NewAchievementService(db *pgxpool.Pool, trackingService *TrackingService) *AchievementService {
	return &AchievementService{db: db, trackingService: trackingService}
}

func (s *AchievementService) GetAchievements(ctx context.Context) ([]*achievement.Achievement, error) {
	query := `
	SELECT id, title, description, category, target_value, completed, completed_date
	FROM achievements
	ORDER BY completed DESC, target_value ASC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch achievements: %w", err)
	}
	defer rows.Close()

	var achievements []*achievement.Achievement
	for rows.Next() {
		a := &achievement.Achievement{}
		err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Description,
			&a.Category,
			&a.TargetValue,
			&a.Completed,
			&a.CompletedDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		achievements = append(achievements, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating achievements: %w", err)
	}

	return achievements, nil
}

// EvaluateAll runs every pending achievement against the full tracking
// history and persists the newly unlocked ones. Day-count badges accumulate
// over any span of time, so the evaluation never windows the history.
// Already-completed rows are skipped by the evaluator, so re-running is
// always safe. The meditation session count is supplied by the caller; this
// service does not count sessions.
func (s *AchievementService) EvaluateAll(ctx context.Context, meditationSessions int) ([]*achievement.Achievement, error) {
	achievements, err := s.GetAchievements(ctx)
	if err != nil {
		return nil, err
	}

	history, err := s.trackingService.GetAllStatuses(ctx)
	if err != nil {
		return nil, err
	}

	input := achievement.Input{
		History:            history,
		MeditationSessions: meditationSessions,
		EvaluatedAt:        time.Now(),
	}

	var unlocked []*achievement.Achievement
	for _, a := range achievements {
		evaluated := achievement.Evaluate(*a, input)
		if evaluated.Completed == a.Completed {
			continue
		}

		query := `
		UPDATE achievements
		SET completed = TRUE, completed_date = $2
		WHERE id = $1 AND completed = FALSE
		`
		if _, err := s.db.Exec(ctx, query, evaluated.ID, evaluated.CompletedDate); err != nil {
			return nil, fmt.Errorf("failed to persist unlock: %w", err)
		}

		copied := evaluated
		unlocked = append(unlocked, &copied)
	}

	return unlocked, nil
}
