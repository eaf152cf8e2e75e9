package user

import (
	"time"

	"fitnessCheckAPI/internal/goals"
)

// Profile is the single local user's profile. The row is a fixed singleton;
// reset restores the default goals, it never deletes the row.
type Profile struct {
	Name                string          `json:"name" db:"name"`
	Goals               goals.UserGoals `json:"goals"`
	ProfilePictureIndex int             `json:"profile_picture_index" db:"profile_picture_index"`
	CreatedAt           time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at" db:"updated_at"`
}
