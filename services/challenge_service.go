package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fitnessCheckAPI/internal/challenge"
)

type ChallengeService struct {
	db *pgxpool.Pool
}

func NewChallengeService(db *pgxpool.Pool) *ChallengeService {
	return &ChallengeService{db: db}
}

type CreateChallengeRequest struct {
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Type           challenge.Type `json:"type"`
	Duration       string         `json:"duration"`
	ParticipantIDs []string       `json:"participant_ids"`
	Prize          string         `json:"prize"`
	MaxProgress    *float64       `json:"max_progress,omitempty"`
}

// ChallengeWithPercentage is the list shape the challenge cards render.
type ChallengeWithPercentage struct {
	challenge.Challenge
	CompletionPercentage int    `json:"completion_percentage"`
	Emoji                string `json:"emoji"`
}

func (s *ChallengeService) CreateChallenge(ctx context.Context, req *CreateChallengeRequest) (*challenge.Challenge, error) {
	maxProgress := challenge.DefaultMaxProgress
	if req.MaxProgress != nil {
		maxProgress = *req.MaxProgress
	}

	c, err := challenge.New(req.Title, req.Description, req.Type, req.Duration, req.ParticipantIDs, req.Prize, maxProgress)
	if err != nil {
		return nil, err
	}

	query := `
	INSERT INTO challenges (id, title, description, type, duration, participant_ids, is_active, prize, progress, max_progress, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = s.db.Exec(
		ctx,
		query,
		c.ID,
		c.Title,
		c.Description,
		c.Type,
		c.Duration,
		c.ParticipantIDs,
		c.IsActive,
		c.Prize,
		c.Progress,
		c.MaxProgress,
		c.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}

	return c, nil
}

// GetChallenges lists challenges newest first. With activeOnly set it
// returns only the ones still running.
func (s *ChallengeService) GetChallenges(ctx context.Context, activeOnly bool) ([]*ChallengeWithPercentage, error) {
	query := `
	SELECT id, title, description, type, duration, participant_ids, is_active, prize, progress, max_progress, created_at
	FROM challenges
	ORDER BY created_at DESC
	`
	if activeOnly {
		query = `
	SELECT id, title, description, type, duration, participant_ids, is_active, prize, progress, max_progress, created_at
	FROM challenges
	WHERE is_active = TRUE
	ORDER BY created_at DESC
	`
	}

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch challenges: %w", err)
	}
	defer rows.Close()

	challenges := []*ChallengeWithPercentage{}
	for rows.Next() {
		var c challenge.Challenge
		err := rows.Scan(
			&c.ID,
			&c.Title,
			&c.Description,
			&c.Type,
			&c.Duration,
			&c.ParticipantIDs,
			&c.IsActive,
			&c.Prize,
			&c.Progress,
			&c.MaxProgress,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan challenge: %w", err)
		}

		challenges = append(challenges, &ChallengeWithPercentage{
			Challenge:            c,
			CompletionPercentage: challenge.CompletionPercentage(c),
			Emoji:                c.Type.Emoji(),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating challenges: %w", err)
	}

	return challenges, nil
}

func (s *ChallengeService) getChallenge(ctx context.Context, id uuid.UUID) (*challenge.Challenge, error) {
	query := `
	SELECT id, title, description, type, duration, participant_ids, is_active, prize, progress, max_progress, created_at
	FROM challenges
	WHERE id = $1
	`

	var c challenge.Challenge
	err := s.db.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.Type,
		&c.Duration,
		&c.ParticipantIDs,
		&c.IsActive,
		&c.Prize,
		&c.Progress,
		&c.MaxProgress,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, challenge.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	return &c, nil
}

// ApplyProgressDelta adds the delta to a challenge's progress. The clamping
// happens in the domain package; the stored row gets the clamped copy.
func (s *ChallengeService) ApplyProgressDelta(ctx context.Context, id uuid.UUID, delta float64) (*ChallengeWithPercentage, error) {
	current, err := s.getChallenge(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := challenge.ApplyProgressDelta(*current, delta)

	query := `UPDATE challenges SET progress = $2 WHERE id = $1`
	_, err = s.db.Exec(ctx, query, id, updated.Progress)
	if err != nil {
		return nil, fmt.Errorf("failed to update challenge progress: %w", err)
	}

	return &ChallengeWithPercentage{
		Challenge:            updated,
		CompletionPercentage: challenge.CompletionPercentage(updated),
		Emoji:                updated.Type.Emoji(),
	}, nil
}

// SetActive flips the active flag. Progress is untouched.
func (s *ChallengeService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*challenge.Challenge, error) {
	current, err := s.getChallenge(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := challenge.SetActive(*current, active)

	query := `UPDATE challenges SET is_active = $2 WHERE id = $1`
	_, err = s.db.Exec(ctx, query, id, updated.IsActive)
	if err != nil {
		return nil, fmt.Errorf("failed to update challenge status: %w", err)
	}

	return &updated, nil
}

func (s *ChallengeService) DeleteChallenge(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM challenges WHERE id = $1`

	result, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete challenge: %w", err)
	}

	if result.RowsAffected() == 0 {
		return challenge.ErrNotFound
	}

	return nil
}
