// Package dto defines the JSON bodies of the tracker endpoints.
package dto

// CreateTrackReq is the body of POST /api/tracks.
type CreateTrackReq struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

// UpdateTrackReq is the body of PATCH /api/tracks/:id. Omitted fields are unchanged.
type UpdateTrackReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

// CreateGoalReq is the body of POST /api/goals.
type CreateGoalReq struct {
	TrackID      int64   `json:"track_id" binding:"required,gt=0"`
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	TargetValue  *int    `json:"target_value"`
	CurrentValue *int    `json:"current_value"`
	Unit         *string `json:"unit"`
}

// UpdateGoalReq is the body of PATCH /api/goals/:id.
type UpdateGoalReq struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	TargetValue  *int    `json:"target_value"`
	CurrentValue *int    `json:"current_value"`
	Unit         *string `json:"unit"`
}

// CreateTaskReq is the body of POST /api/tasks.
type CreateTaskReq struct {
	GoalID      int64   `json:"goal_id" binding:"required,gt=0"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// UpdateTaskReq is the body of PATCH /api/tasks/:id.
type UpdateTaskReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}
