package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"fitnessCheckAPI/internal/friend"
	"fitnessCheckAPI/internal/leaderboard"
)

type FriendService struct {
	db *pgxpool.Pool
}

func NewFriendService(db *pgxpool.Pool) *FriendService {
	return &FriendService{db: db}
}

func (s *FriendService) GetFriends(ctx context.Context) ([]*friend.Friend, error) {
	query := `
	SELECT id, name, profile_picture_index, current_steps, step_goal, is_online, last_active, streak
	FROM friends
	ORDER BY name
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch friends: %w", err)
	}
	defer rows.Close()

	var friends []*friend.Friend
	for rows.Next() {
		f := &friend.Friend{}
		err := rows.Scan(
			&f.ID,
			&f.Name,
			&f.ProfilePictureIndex,
			&f.CurrentSteps,
			&f.StepGoal,
			&f.IsOnline,
			&f.LastActive,
			&f.Streak,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan friend: %w", err)
		}
		friends = append(friends, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating friends: %w", err)
	}

	return friends, nil
}

// GetLeaderboard ranks the friends by step score. The ordering and tie
// handling live in the leaderboard package; this only supplies the rows.
func (s *FriendService) GetLeaderboard(ctx context.Context) (*leaderboard.Leaderboard, error) {
	friends, err := s.GetFriends(ctx)
	if err != nil {
		return nil, err
	}

	participants := make([]leaderboard.Participant, 0, len(friends))
	for _, f := range friends {
		participants = append(participants, leaderboard.Participant{
			ID:           f.ID,
			DisplayName:  f.Name,
			PrimaryScore: f.CurrentSteps,
			StreakLength: f.Streak,
		})
	}

	entries := leaderboard.Rank(participants)

	return &leaderboard.Leaderboard{
		Entries:    entries,
		TotalUsers: len(entries),
	}, nil
}
