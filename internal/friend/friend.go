package friend

// Friend is a buddy the user shares challenges with. Friends live in a
// local table seeded at install; there is no remote friend graph.
type Friend struct {
	ID                  string `json:"id" db:"id"`
	Name                string `json:"name" db:"name"`
	ProfilePictureIndex int    `json:"profile_picture_index" db:"profile_picture_index"`
	CurrentSteps        int    `json:"current_steps" db:"current_steps"`
	StepGoal            int    `json:"step_goal" db:"step_goal"`
	IsOnline            bool   `json:"is_online" db:"is_online"`
	LastActive          string `json:"last_active" db:"last_active"`
	Streak              int    `json:"streak" db:"streak"`
}
