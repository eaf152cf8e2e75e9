package leaderboard

import "sort"

// streakWeight is how many points each day of streak is worth on the board.
const streakWeight = 100

// Participant is a friend's raw stats as supplied by the storage layer.
type Participant struct {
	ID           string `json:"id"`
	DisplayName  string `json:"display_name"`
	PrimaryScore int    `json:"primary_score"`
	StreakLength int    `json:"streak_length"`
}

type Entry struct {
	ParticipantID string `json:"participant_id"`
	DisplayName   string `json:"display_name"`
	Score         int    `json:"score"`
	Rank          int    `json:"rank"`
}

type Leaderboard struct {
	Entries    []*Entry `json:"entries"`
	TotalUsers int      `json:"total_users"`
}

// Score combines the current metric value with a streak bonus.
func Score(p Participant) int {
	return p.PrimaryScore + p.StreakLength*streakWeight
}

// Rank produces the board for a set of participants: descending by score,
// ties kept in input order, ranks assigned 1..N after the sort. An empty
// input yields an empty board.
func Rank(participants []Participant) []*Entry {
	entries := make([]*Entry, 0, len(participants))
	for _, p := range participants {
		entries = append(entries, &Entry{
			ParticipantID: p.ID,
			DisplayName:   p.DisplayName,
			Score:         Score(p),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	for i, e := range entries {
		e.Rank = i + 1
	}

	return entries
}
