package user

// UpdateProfileRequest carries partial profile edits. Zero values mean
// "leave unchanged"; goal values are validated before they are written.
type UpdateProfileRequest struct {
	Name                string   `json:"name"`
	StepGoal            *int     `json:"step_goal,omitempty"`
	WaterGoalLiters     *float64 `json:"water_goal_liters,omitempty"`
	SleepGoalHours      *float64 `json:"sleep_goal_hours,omitempty"`
	ProfilePictureIndex *int     `json:"profile_picture_index,omitempty"`
}
