package challenge

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrValidation is returned when a challenge fails its construction checks.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned when an operation references an unknown challenge id.
	ErrNotFound = errors.New("challenge not found")
)

type Type string

const (
	TypeSteps      Type = "STEPS"
	TypeWater      Type = "WATER"
	TypeSleep      Type = "SLEEP"
	TypeMeditation Type = "MEDITATION"
	TypeMixed      Type = "MIXED"
)

// DefaultMaxProgress matches the mobile app, which tracks every challenge
// out of 100.
const DefaultMaxProgress = 100.0

type Challenge struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Description    string    `json:"description" db:"description"`
	Type           Type      `json:"type" db:"type"`
	Duration       string    `json:"duration" db:"duration"`
	ParticipantIDs []string  `json:"participant_ids" db:"participant_ids"`
	IsActive       bool      `json:"is_active" db:"is_active"`
	Prize          string    `json:"prize,omitempty" db:"prize"`
	Progress       float64   `json:"progress" db:"progress"`
	MaxProgress    float64   `json:"max_progress" db:"max_progress"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// New builds a challenge with zero progress and the active flag set. Title,
// description and duration are required; maxProgress must be positive so
// the completion percentage is always well-defined.
func New(title, description string, typ Type, duration string, participantIDs []string, prize string, maxProgress float64) (*Challenge, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if duration == "" {
		return nil, fmt.Errorf("%w: duration is required", ErrValidation)
	}
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: unknown challenge type %q", ErrValidation, typ)
	}
	if maxProgress <= 0 {
		return nil, fmt.Errorf("%w: max progress must be greater than zero", ErrValidation)
	}

	return &Challenge{
		ID:             uuid.New(),
		Title:          title,
		Description:    description,
		Type:           typ,
		Duration:       duration,
		ParticipantIDs: participantIDs,
		IsActive:       true,
		Prize:          prize,
		Progress:       0,
		MaxProgress:    maxProgress,
		CreatedAt:      time.Now(),
	}, nil
}

func (t Type) Valid() bool {
	switch t {
	case TypeSteps, TypeWater, TypeSleep, TypeMeditation, TypeMixed:
		return true
	}
	return false
}

// Emoji returns the display emoji for a challenge type. The mapping is total
// over the valid types; unknown values fall back to the mixed marker.
func (t Type) Emoji() string {
	switch t {
	case TypeSteps:
		return "🚶"
	case TypeWater:
		return "💧"
	case TypeSleep:
		return "😴"
	case TypeMeditation:
		return "🧘"
	default:
		return "🎯"
	}
}

// Label returns the human-readable name for a challenge type.
func (t Type) Label() string {
	switch t {
	case TypeSteps:
		return "Steps"
	case TypeWater:
		return "Water"
	case TypeSleep:
		return "Sleep"
	case TypeMeditation:
		return "Meditation"
	default:
		return "Mixed"
	}
}

// ApplyProgressDelta returns a copy with the delta applied and the result
// clamped to [0, MaxProgress]. The delta may be negative.
func ApplyProgressDelta(c Challenge, delta float64) Challenge {
	c.Progress = clamp(c.Progress+delta, 0, c.MaxProgress)
	return c
}

// SetActive returns a copy with the active flag flipped. Progress is left
// untouched, and reaching max progress never flips the flag on its own.
func SetActive(c Challenge, active bool) Challenge {
	c.IsActive = active
	return c
}

// CompletionPercentage rounds progress/max to a whole percent, half up.
func CompletionPercentage(c Challenge) int {
	return int(math.Round(c.Progress / c.MaxProgress * 100))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
