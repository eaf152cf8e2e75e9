package challenge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChallenge(t *testing.T) {
	c, err := New("Weekend Warriors", "Walk 20,000 steps this weekend", TypeSteps, "2 days", []string{"1", "2", "3"}, "🏆 Winner's Badge", DefaultMaxProgress)
	require.NoError(t, err)

	assert.Equal(t, "Weekend Warriors", c.Title)
	assert.Equal(t, TypeSteps, c.Type)
	assert.True(t, c.IsActive)
	assert.Equal(t, 0.0, c.Progress)
	assert.Equal(t, 100.0, c.MaxProgress)
	assert.NotEqual(t, c.ID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestNewChallenge_Validation(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		duration    string
		typ         Type
		maxProgress float64
	}{
		{"empty title", "", "desc", "7 days", TypeWater, 100},
		{"empty description", "Hydration Station", "", "7 days", TypeWater, 100},
		{"empty duration", "Hydration Station", "desc", "", TypeWater, 100},
		{"unknown type", "Hydration Station", "desc", "7 days", Type("YOGA"), 100},
		{"zero max progress", "Hydration Station", "desc", "7 days", TypeWater, 0},
		{"negative max progress", "Hydration Station", "desc", "7 days", TypeWater, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.title, tt.description, tt.typ, tt.duration, nil, "", tt.maxProgress)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
		})
	}
}

func TestApplyProgressDelta_Clamps(t *testing.T) {
	c := Challenge{Progress: 65, MaxProgress: 100}

	updated := ApplyProgressDelta(c, 50)
	assert.Equal(t, 100.0, updated.Progress, "progress should clamp at max, not reach 115")
	assert.Equal(t, 100, CompletionPercentage(updated))

	updated = ApplyProgressDelta(c, -80)
	assert.Equal(t, 0.0, updated.Progress, "progress should clamp at zero")

	// Original is never mutated in place.
	assert.Equal(t, 65.0, c.Progress)
}

func TestApplyProgressDelta_ClampInvariant(t *testing.T) {
	c := Challenge{Progress: 40, MaxProgress: 100}
	deltas := []float64{-1000, -40.5, -0.1, 0, 0.1, 59, 60, 61, 1e9}

	for _, d := range deltas {
		updated := ApplyProgressDelta(c, d)
		assert.GreaterOrEqual(t, updated.Progress, 0.0, "delta %v", d)
		assert.LessOrEqual(t, updated.Progress, updated.MaxProgress, "delta %v", d)
	}
}

func TestCompletionPercentage(t *testing.T) {
	assert.Equal(t, 0, CompletionPercentage(Challenge{Progress: 0, MaxProgress: 100}))
	assert.Equal(t, 65, CompletionPercentage(Challenge{Progress: 65, MaxProgress: 100}))
	assert.Equal(t, 100, CompletionPercentage(Challenge{Progress: 100, MaxProgress: 100}))
	// Rounds half up.
	assert.Equal(t, 34, CompletionPercentage(Challenge{Progress: 33.5, MaxProgress: 100}))
	assert.Equal(t, 13, CompletionPercentage(Challenge{Progress: 25, MaxProgress: 200}))
}

func TestCompletionPercentage_NonDecreasing(t *testing.T) {
	prev := -1
	for p := 0.0; p <= 100; p += 0.25 {
		pct := CompletionPercentage(Challenge{Progress: p, MaxProgress: 100})
		assert.GreaterOrEqual(t, pct, prev)
		prev = pct
	}
}

func TestSetActive_DoesNotTouchProgress(t *testing.T) {
	c := Challenge{Progress: 100, MaxProgress: 100, IsActive: true}

	updated := SetActive(c, false)
	assert.False(t, updated.IsActive)
	assert.Equal(t, 100.0, updated.Progress)

	// Reaching max progress does not flip the flag by itself.
	full := ApplyProgressDelta(Challenge{Progress: 90, MaxProgress: 100, IsActive: true}, 20)
	assert.True(t, full.IsActive)
}

func TestTypeMetadata_Total(t *testing.T) {
	types := []Type{TypeSteps, TypeWater, TypeSleep, TypeMeditation, TypeMixed}
	seen := make(map[string]bool)

	for _, typ := range types {
		assert.True(t, typ.Valid())
		assert.NotEmpty(t, typ.Emoji())
		assert.NotEmpty(t, typ.Label())
		seen[typ.Emoji()] = true
	}

	assert.Len(t, seen, len(types), "each type should have a distinct emoji")
	assert.False(t, Type("YOGA").Valid())
}
