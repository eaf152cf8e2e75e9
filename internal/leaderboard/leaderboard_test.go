package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	participants := []Participant{
		{ID: "1", DisplayName: "Sarah Wilson", PrimaryScore: 8750, StreakLength: 15},
		{ID: "2", DisplayName: "Mike Johnson", PrimaryScore: 12340, StreakLength: 8},
		{ID: "3", DisplayName: "Emma Davis", PrimaryScore: 6500, StreakLength: 22},
		{ID: "4", DisplayName: "Alex Chen", PrimaryScore: 9800, StreakLength: 5},
		{ID: "5", DisplayName: "Lisa Taylor", PrimaryScore: 11200, StreakLength: 12},
	}

	entries := Rank(participants)
	require.Len(t, entries, 5)

	assert.Equal(t, []int{13140, 12400, 10300, 10250, 8700}, scores(entries))
	assert.Equal(t, "2", entries[0].ParticipantID)
	assert.Equal(t, "5", entries[1].ParticipantID)
	assert.Equal(t, "4", entries[2].ParticipantID)
	assert.Equal(t, "1", entries[3].ParticipantID)
	assert.Equal(t, "3", entries[4].ParticipantID)

	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
	}
}

func TestRank_StableTies(t *testing.T) {
	participants := []Participant{
		{ID: "a", PrimaryScore: 5000, StreakLength: 0},
		{ID: "b", PrimaryScore: 4000, StreakLength: 10},
		{ID: "c", PrimaryScore: 5000, StreakLength: 0},
	}

	entries := Rank(participants)
	require.Len(t, entries, 3)

	// a, b and c all score 5000; input order is preserved among ties.
	assert.Equal(t, "a", entries[0].ParticipantID)
	assert.Equal(t, "b", entries[1].ParticipantID)
	assert.Equal(t, "c", entries[2].ParticipantID)

	// Tied entries still get sequential ranks, never shared ones.
	assert.Equal(t, []int{1, 2, 3}, ranks(entries))
}

func TestRank_Empty(t *testing.T) {
	entries := Rank(nil)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestScore(t *testing.T) {
	assert.Equal(t, 10250, Score(Participant{PrimaryScore: 8750, StreakLength: 15}))
	assert.Equal(t, 0, Score(Participant{}))
}

func scores(entries []*Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Score
	}
	return out
}

func ranks(entries []*Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Rank
	}
	return out
}
